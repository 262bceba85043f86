// Package renderer holds state shared by the console front-ends: build
// identification and the terminal color styles used by the TUI.
package renderer

import (
	"github.com/gookit/color"

	"devcon/pkg/engine/console"
)

// Version and Commit are set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

var (
	ColorInfo      color.Style
	ColorUserInput color.Style
	ColorError     color.Style
	ColorPrompt    color.Style
	ColorSubtle    color.Style
)

// InitColors initializes the color styles.
func InitColors() {
	ColorInfo = color.Style{color.FgGray}
	ColorUserInput = color.Style{color.FgWhite, color.OpBold}
	ColorError = color.Style{color.FgRed, color.OpBold}
	ColorPrompt = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
}

// StyleFor returns the terminal style for a log entry kind.
func StyleFor(kind console.Kind) color.Style {
	switch kind {
	case console.KindUserInput:
		return ColorUserInput
	case console.KindError:
		return ColorError
	default:
		return ColorInfo
	}
}

// SeedBuildVariables publishes the build identification as console
// variables, so `get version` works out of the box.
func SeedBuildVariables(c *console.Console) {
	c.SetVariable("version", Version)
	if Commit != "unknown" && len(Commit) > 0 {
		c.SetVariable("commit", Commit)
	}
}
