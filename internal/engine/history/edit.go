package history

import "fmt"

// InsertCharCommand types one character at the cursor.
type InsertCharCommand struct {
	base
	ch byte
}

// InsertChar inserts ch at the cursor and moves the cursor past it.
func InsertChar(ch byte) Factory {
	return func(ctx *Context) Command {
		return &InsertCharCommand{base: base{ctx: ctx}, ch: ch}
	}
}

func (c *InsertCharCommand) Execute() bool {
	c.mark()
	c.doc().InsertCharacter(c.ch)
	return true
}

func (c *InsertCharCommand) Undo() {
	deleteText(c.doc(), c.at.Line, c.at.Column, 1)
	c.restore()
}

func (c *InsertCharCommand) Redo() {
	insertText(c.doc(), c.at.Line, c.at.Column, string(c.ch))
}

func (c *InsertCharCommand) Description() string {
	return fmt.Sprintf("insert %q", c.ch)
}

// DeleteCharBeforeCommand removes the character left of the cursor.
type DeleteCharBeforeCommand struct {
	base
	ch byte
}

// DeleteCharBefore deletes the character immediately left of the cursor.
// It is a no-op at the start of a line.
func DeleteCharBefore() Factory {
	return func(ctx *Context) Command {
		return &DeleteCharBeforeCommand{base: base{ctx: ctx}}
	}
}

func (c *DeleteCharBeforeCommand) Execute() bool {
	c.mark()
	ch, ok := c.doc().DeleteCharacterBefore()
	c.ch = ch
	return ok
}

func (c *DeleteCharBeforeCommand) Undo() {
	insertText(c.doc(), c.at.Line, c.at.Column-1, string(c.ch))
	c.restore()
}

func (c *DeleteCharBeforeCommand) Redo() {
	deleteText(c.doc(), c.at.Line, c.at.Column-1, 1)
}

func (c *DeleteCharBeforeCommand) Description() string {
	return "delete before cursor"
}

// DeleteCharAtCommand removes the character under the cursor.
type DeleteCharAtCommand struct {
	base
	ch byte
	// typing is set for the insert-mode Delete key: no yank, and the
	// cursor may stay after the last character.
	typing bool
}

// DeleteCharAt deletes the character under the cursor and yanks it. The
// cursor stays on a character when the last one of the line is deleted.
func DeleteCharAt() Factory {
	return func(ctx *Context) Command {
		return &DeleteCharAtCommand{base: base{ctx: ctx}}
	}
}

// DeleteCharAfter deletes the character under the cursor while typing.
// The cursor does not move and the clipboard is left alone.
func DeleteCharAfter() Factory {
	return func(ctx *Context) Command {
		return &DeleteCharAtCommand{base: base{ctx: ctx}, typing: true}
	}
}

func (c *DeleteCharAtCommand) Execute() bool {
	c.mark()
	if !c.apply() {
		return false
	}
	if cb := c.ctx.Clipboard; cb != nil && !c.typing {
		cb.YankChars(string(c.ch), c.at.Column, c.at.Column+1)
	}
	return true
}

func (c *DeleteCharAtCommand) apply() bool {
	d := c.doc()
	ch, ok := d.DeleteCharacterAt()
	if !ok {
		return false
	}
	c.ch = ch
	if c.typing {
		return true
	}
	if n := d.LineLength(c.at.Line); c.at.Column >= n && n > 0 {
		d.MoveCursorTo(c.at.Line, n-1)
	}
	return true
}

func (c *DeleteCharAtCommand) Undo() {
	insertText(c.doc(), c.at.Line, c.at.Column, string(c.ch))
	c.restore()
}

func (c *DeleteCharAtCommand) Redo() {
	c.restore()
	c.apply()
}

func (c *DeleteCharAtCommand) Description() string {
	return "delete under cursor"
}

// ReplaceCharCommand overwrites the character under the cursor.
type ReplaceCharCommand struct {
	base
	ch  byte
	old byte
}

// ReplaceChar replaces the character under the cursor with ch. It is a
// no-op on an empty line or after the last character.
func ReplaceChar(ch byte) Factory {
	return func(ctx *Context) Command {
		return &ReplaceCharCommand{base: base{ctx: ctx}, ch: ch}
	}
}

func (c *ReplaceCharCommand) Execute() bool {
	c.mark()
	old, ok := c.doc().ReplaceCharacter(c.ch)
	c.old = old
	return ok
}

func (c *ReplaceCharCommand) Undo() {
	c.restore()
	c.doc().ReplaceCharacter(c.old)
}

func (c *ReplaceCharCommand) Redo() {
	c.restore()
	c.doc().ReplaceCharacter(c.ch)
}

func (c *ReplaceCharCommand) Description() string {
	return fmt.Sprintf("replace with %q", c.ch)
}

// ReplaceCharsCommand overwrites a run of characters starting at the cursor.
type ReplaceCharsCommand struct {
	base
	ch  byte
	n   int
	old []byte
}

// ReplaceChars replaces n characters from the cursor with ch and leaves
// the cursor on the last one. Nothing changes when fewer than n characters
// are left on the line.
func ReplaceChars(ch byte, n int) Factory {
	return func(ctx *Context) Command {
		return &ReplaceCharsCommand{base: base{ctx: ctx}, ch: ch, n: max(n, 1)}
	}
}

func (c *ReplaceCharsCommand) Execute() bool {
	c.mark()
	if c.at.Column+c.n > c.doc().LineLength(c.at.Line) {
		return false
	}
	c.apply()
	return true
}

func (c *ReplaceCharsCommand) apply() {
	d := c.doc()
	c.old = make([]byte, 0, c.n)
	for i := range c.n {
		d.MoveCursorTo(c.at.Line, c.at.Column+i)
		old, _ := d.ReplaceCharacter(c.ch)
		c.old = append(c.old, old)
	}
}

func (c *ReplaceCharsCommand) Undo() {
	d := c.doc()
	for i, b := range c.old {
		d.MoveCursorTo(c.at.Line, c.at.Column+i)
		d.ReplaceCharacter(b)
	}
	c.restore()
}

func (c *ReplaceCharsCommand) Redo() {
	c.apply()
}

func (c *ReplaceCharsCommand) Description() string {
	return fmt.Sprintf("replace %d with %q", c.n, c.ch)
}
