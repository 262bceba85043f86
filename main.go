// Command devcon demonstrates the embeddable developer console: a small
// Ebiten window with the drop-down console over it, or a pure-terminal
// session with -tui.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/gomono"

	"devcon/pkg/engine/console"
	"devcon/pkg/engine/mods"
	"devcon/pkg/game/renderer"
	ebitenfe "devcon/pkg/game/renderer/ebiten"
	"devcon/pkg/game/renderer/tui"
)

func initGettext() {
	gotext.Configure("mo", "en_GB.utf8", "default")
}

// quitCommand closes the demo from the console.
type quitCommand struct {
	quit *bool
}

func (quitCommand) Name() string        { return "quit" }
func (quitCommand) Usage() string       { return "quit" }
func (quitCommand) Description() string { return "Exit the demo" }

func (q quitCommand) Execute(c *console.Console, args []string) error {
	*q.quit = true
	return nil
}

// echoCommand prints its arguments back, one log entry per line.
type echoCommand struct{}

func (echoCommand) Name() string        { return "echo" }
func (echoCommand) Usage() string       { return "echo <text>..." }
func (echoCommand) Description() string { return "Echo arguments to the log" }

func (echoCommand) Execute(c *console.Console, args []string) error {
	for _, arg := range args {
		c.Log(arg)
	}
	return nil
}

// game is the minimal Ebiten host scene under the console.
type game struct {
	overlay  *ebitenfe.Overlay
	hintFace *text.GoTextFace
	quit     bool
}

func (g *game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.overlay.Update()
	if !g.overlay.Active() && inputEscPressed() {
		return ebiten.Termination
	}
	return nil
}

func inputEscPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{26, 26, 46, 255})

	op := &text.DrawOptions{}
	op.GeoM.Translate(20, float64(screen.Bounds().Dy())-40)
	op.ColorScale.ScaleWithColor(color.RGBA{120, 130, 180, 255})
	text.Draw(screen, gotext.Get("press ` for console, ESC to quit"), g.hintFace, op)

	g.overlay.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// newConsole wires up a console with the demo's modules and commands.
func newConsole(quit *bool) *console.Console {
	loader := mods.NewLoader()
	loader.Register(mods.Module{Name: "demo", Version: renderer.Version})

	c := console.New(console.Config{
		Modules: loader,
		OnVisibility: func(shown bool) {
			if shown {
				ebiten.SetCursorMode(ebiten.CursorModeVisible)
			}
		},
	})
	renderer.SeedBuildVariables(c)
	console.RegisterNew[echoCommand](c)
	c.RegisterCommand(quitCommand{quit: quit})
	c.Log("Developer console ready. Type 'help' for commands.")
	return c
}

func runEbiten() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("cannot load console font: %w", err)
	}

	g := &game{
		hintFace: &text.GoTextFace{Source: fontSource, Size: 14},
	}
	g.overlay = ebitenfe.NewOverlay(newConsole(&g.quit), fontSource)

	ebiten.SetWindowSize(960, 540)
	ebiten.SetWindowTitle("devcon demo")
	return ebiten.RunGame(g)
}

func runTUI() error {
	var quit bool
	return tui.New(newConsole(&quit)).Run()
}

func main() {
	useTUI := flag.Bool("tui", false, "run the console in the terminal instead of a window")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("devcon %v (%v)\n", renderer.Version, renderer.Commit)
		os.Exit(0)
	}

	initGettext()
	renderer.InitColors()

	var err error
	if *useTUI {
		err = runTUI()
	} else {
		err = runEbiten()
	}
	if err != nil {
		log.Fatalf("devcon: %v", err)
	}
}
