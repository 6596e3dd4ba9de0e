package history

import (
	"fmt"

	"github.com/dshills/gapvim/internal/input/mode"
)

// ChangeModeCommand switches the editor mode.
type ChangeModeCommand struct {
	base
	to   mode.Mode
	from mode.Mode
}

// ChangeMode switches to mode m. Mode changes are not recorded.
func ChangeMode(m mode.Mode) Factory {
	return func(ctx *Context) Command {
		return &ChangeModeCommand{base: base{ctx: ctx}, to: m}
	}
}

func (c *ChangeModeCommand) Execute() bool {
	if c.ctx.Modes == nil {
		return false
	}
	c.from = c.ctx.Modes.Mode()
	c.ctx.Modes.Switch(c.to)
	return false
}

func (c *ChangeModeCommand) Undo() {
	if c.ctx.Modes != nil {
		c.ctx.Modes.Switch(c.from)
	}
}

func (c *ChangeModeCommand) Redo() {
	if c.ctx.Modes != nil {
		c.ctx.Modes.Switch(c.to)
	}
}

func (c *ChangeModeCommand) Description() string {
	return fmt.Sprintf("%s mode", c.to)
}

// QuitCommand asks the application to exit.
type QuitCommand struct {
	base
	force bool
}

// Quit requests the application to exit. With force set unsaved changes
// are discarded.
func Quit(force bool) Factory {
	return func(ctx *Context) Command {
		return &QuitCommand{base: base{ctx: ctx}, force: force}
	}
}

func (c *QuitCommand) Execute() bool {
	if c.ctx.Quit != nil {
		c.ctx.Quit(c.force)
	}
	return false
}

func (c *QuitCommand) Undo() {}
func (c *QuitCommand) Redo() {}

func (c *QuitCommand) Description() string {
	if c.force {
		return "quit!"
	}
	return "quit"
}
