package console

import (
	"fmt"
	"strings"
)

// registerBuiltins installs the commands every console starts with.
func registerBuiltins(c *Console) {
	RegisterNew[helpCommand](c)
	RegisterNew[lsmodCommand](c)
	RegisterNew[setCommand](c)
	RegisterNew[getCommand](c)
	RegisterNew[listCommand](c)
	RegisterNew[clearCommand](c)
}

type helpCommand struct{}

func (helpCommand) Name() string        { return "help" }
func (helpCommand) Usage() string       { return "help" }
func (helpCommand) Description() string { return "List all registered commands" }

func (helpCommand) Execute(c *Console, args []string) error {
	c.Log("Commands:")
	for _, name := range c.registry.Names() {
		cmd, _ := c.registry.Lookup(name)
		if desc := cmd.Description(); desc != "" {
			c.Logf("  %-20s - %s", cmd.Usage(), desc)
		} else {
			c.Logf("  %s", cmd.Usage())
		}
	}
	return nil
}

type lsmodCommand struct{}

func (lsmodCommand) Name() string        { return "lsmod" }
func (lsmodCommand) Usage() string       { return "lsmod" }
func (lsmodCommand) Description() string { return "List loaded modules" }

func (lsmodCommand) Execute(c *Console, args []string) error {
	if c.modules == nil {
		c.Log("No modules loaded")
		return nil
	}
	names := c.modules.Modules()
	if len(names) == 0 {
		c.Log("No modules loaded")
		return nil
	}
	c.Logf("Modules (%d):", len(names))
	for _, name := range names {
		c.Logf("  %s", name)
	}
	return nil
}

type setCommand struct{}

func (setCommand) Name() string        { return "set" }
func (setCommand) Usage() string       { return "set <var> <value>" }
func (setCommand) Description() string { return "Set a console variable" }

func (setCommand) Execute(c *Console, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("Usage: set <var> <value>")
	}
	name := args[0]
	value := strings.Join(args[1:], " ")
	c.SetVariable(name, value)
	c.Logf("%s = %q", name, value)
	return nil
}

type getCommand struct{}

func (getCommand) Name() string        { return "get" }
func (getCommand) Usage() string       { return "get <var>" }
func (getCommand) Description() string { return "Print a console variable" }

func (getCommand) Execute(c *Console, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("Usage: get <var>")
	}
	value, ok := c.GetVariable(args[0])
	if !ok {
		c.Log("null")
		return nil
	}
	c.Log(value)
	return nil
}

type listCommand struct{}

func (listCommand) Name() string        { return "list" }
func (listCommand) Usage() string       { return "list" }
func (listCommand) Description() string { return "List all console variables" }

func (listCommand) Execute(c *Console, args []string) error {
	names := c.vars.Names()
	if len(names) == 0 {
		c.Log("No variables set")
		return nil
	}
	c.Logf("Variables (%d):", len(names))
	for _, name := range names {
		value, _ := c.vars.Get(name)
		c.Logf("  %s = %q", name, value)
	}
	return nil
}

type clearCommand struct{}

func (clearCommand) Name() string        { return "clear" }
func (clearCommand) Usage() string       { return "clear" }
func (clearCommand) Description() string { return "Clear console output" }

func (clearCommand) Execute(c *Console, args []string) error {
	c.log.Clear()
	return nil
}
