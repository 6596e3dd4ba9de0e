package history

import (
	"time"

	"go.uber.org/zap"

	"github.com/dshills/gapvim/internal/engine/ring"
)

// DefaultMaxHistory is the number of commands kept when no limit is given.
const DefaultMaxHistory = 50000

// Option configures a Log.
type Option func(*Log)

// WithMaxHistory sets the maximum number of recorded commands.
// Values below 1 are ignored.
func WithMaxHistory(n int) Option {
	return func(l *Log) {
		if n >= 1 {
			l.maxHistory = n
		}
	}
}

// WithLogger sets the logger that receives execution timings and
// bookkeeping warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Log) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// entry is a recorded command and its generation.
type entry struct {
	cmd        Command
	generation uint64
	seq        uint64
	at         time.Time
}

// EntryInfo describes a recorded command.
type EntryInfo struct {
	Description string
	Generation  uint64
	Time        time.Time
	// Undone is true for entries that can be redone.
	Undone bool
}

// Log executes commands and records those that change the document so
// they can be undone and redone in generation-sized units.
//
// Entries in [0, active) are applied; entries in [active, Len()) have been
// undone and can be redone until the next recorded edit discards them.
type Log struct {
	ctx        *Context
	entries    *ring.Ring[entry]
	maxHistory int
	logger     *zap.Logger

	active     int
	generation uint64
	batchRun   int
	flushed    bool

	// seq numbers recorded entries. base is the state before the oldest
	// kept entry and saved the state last written to disk.
	seq   uint64
	base  uint64
	saved uint64
}

// NewLog creates a log executing commands against ctx.
func NewLog(ctx *Context, opts ...Option) *Log {
	l := &Log{
		ctx:        ctx,
		maxHistory: DefaultMaxHistory,
		logger:     zap.NewNop(),
		flushed:    true,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.entries = ring.New[entry](l.maxHistory)
	return l
}

// Execute builds and runs repetition commands from f. All commands of one
// non-batch call share a generation and undo together. A batch call runs
// exactly one command and joins the generation of the preceding call,
// unless Flush was called in between. A repetition of 0 does nothing.
func (l *Log) Execute(f Factory, repetition uint, batch bool) {
	if repetition == 0 || f == nil {
		return
	}
	start := time.Now()

	var gen uint64
	switch {
	case batch && !l.flushed && l.generation > 0:
		gen = l.generation - 1
	case batch:
		gen = l.generation
		l.generation++
	default:
		gen = l.generation
		l.generation++
		l.batchRun = 0
	}
	l.flushed = false

	var last Command
	if batch {
		repetition = 1
	}
	for i := range repetition {
		cmd := f(l.ctx)
		hints := cmd.RenderHints()
		if batch {
			hints.IsFirst = l.batchRun == 0
			hints.RenderExecute = true
			if l.batchRun > 0 {
				l.setLastRender(false)
			}
			l.batchRun++
		} else {
			hints.IsFirst = i == 0
			hints.RenderExecute = i == repetition-1
		}

		if cmd.Execute() {
			l.record(cmd, gen)
		} else if batch && l.batchRun > 1 {
			l.setLastRender(true)
		}
		last = cmd
	}

	if ce := l.logger.Check(zap.DebugLevel, "command executed"); ce != nil {
		ce.Write(
			zap.String("command", last.Description()),
			zap.Uint("repetition", repetition),
			zap.Bool("batch", batch),
			zap.Uint64("generation", gen),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func (l *Log) record(cmd Command, gen uint64) {
	l.entries.Truncate(l.active)
	l.seq++
	if old, evicted := l.entries.Push(entry{cmd: cmd, generation: gen, seq: l.seq, at: time.Now()}); evicted {
		l.base = old.seq
	}
	l.active = l.entries.Len()
	l.syncModified()
}

// state identifies the document content reached by the applied entries.
func (l *Log) state() uint64 {
	if l.active == 0 {
		return l.base
	}
	return l.entries.At(l.active - 1).seq
}

func (l *Log) syncModified() {
	l.ctx.Doc.SetModified(l.state() != l.saved)
}

// MarkSaved records the current state as saved. Undo and redo back to it
// clear the document's modified flag.
func (l *Log) MarkSaved() {
	l.saved = l.state()
	l.ctx.Doc.SetModified(false)
}

// setLastRender sets the render hint of the newest applied entry.
func (l *Log) setLastRender(render bool) {
	if l.active == 0 {
		return
	}
	if cmd := l.entries.At(l.active - 1).cmd; cmd != nil {
		cmd.RenderHints().RenderExecute = render
	}
}

// Flush ends the current batch run. The next batch call starts a new undo
// unit instead of joining the previous one.
func (l *Log) Flush() {
	l.batchRun = 0
	l.flushed = true
	l.setLastRender(true)
}

// Undo reverts the newest applied generation. It reports whether anything
// was undone.
func (l *Log) Undo() bool {
	if l.active == 0 {
		return false
	}
	start := time.Now()
	l.batchRun = 0
	l.flushed = true

	gen := l.entries.At(l.active - 1).generation
	n := 0
	for l.active > 0 && l.entries.At(l.active-1).generation == gen {
		l.active--
		e := l.entries.At(l.active)
		if e.cmd == nil {
			l.logger.Warn("undo skipped missing command",
				zap.Int("index", l.active),
				zap.Uint64("generation", gen))
			continue
		}
		e.cmd.Undo()
		n++
	}
	l.syncModified()

	l.logger.Debug("undo",
		zap.Uint64("generation", gen),
		zap.Int("commands", n),
		zap.Duration("elapsed", time.Since(start)))
	return true
}

// Redo re-applies the oldest undone generation. It reports whether
// anything was redone.
func (l *Log) Redo() bool {
	if l.active >= l.entries.Len() {
		return false
	}
	start := time.Now()
	l.batchRun = 0
	l.flushed = true

	gen := l.entries.At(l.active).generation
	n := 0
	for l.active < l.entries.Len() && l.entries.At(l.active).generation == gen {
		if cmd := l.entries.At(l.active).cmd; cmd != nil {
			cmd.Redo()
			n++
		}
		l.active++
	}
	l.syncModified()

	l.logger.Debug("redo",
		zap.Uint64("generation", gen),
		zap.Int("commands", n),
		zap.Duration("elapsed", time.Since(start)))
	return true
}

// CanUndo reports whether Undo would do anything.
func (l *Log) CanUndo() bool {
	return l.active > 0
}

// CanRedo reports whether Redo would do anything.
func (l *Log) CanRedo() bool {
	return l.active < l.entries.Len()
}

// Len returns the number of recorded commands, including undone ones.
func (l *Log) Len() int {
	return l.entries.Len()
}

// UndoCount returns the number of applied commands.
func (l *Log) UndoCount() int {
	return l.active
}

// RedoCount returns the number of undone commands that can be redone.
func (l *Log) RedoCount() int {
	return l.entries.Len() - l.active
}

// MaxHistory returns the maximum number of recorded commands.
func (l *Log) MaxHistory() int {
	return l.maxHistory
}

// Generation returns the generation the next non-batch call will use.
func (l *Log) Generation() uint64 {
	return l.generation
}

// LastCommand returns the newest applied command, or nil.
func (l *Log) LastCommand() Command {
	if l.active == 0 {
		return nil
	}
	return l.entries.At(l.active - 1).cmd
}

// History describes every recorded command, oldest first.
func (l *Log) History() []EntryInfo {
	out := make([]EntryInfo, l.entries.Len())
	for i := range out {
		e := l.entries.At(i)
		info := EntryInfo{Generation: e.generation, Time: e.at, Undone: i >= l.active}
		if e.cmd != nil {
			info.Description = e.cmd.Description()
		}
		out[i] = info
	}
	return out
}

// Clear drops all recorded commands.
func (l *Log) Clear() {
	l.base = l.state()
	l.entries.Clear()
	l.active = 0
	l.batchRun = 0
	l.flushed = true
}
