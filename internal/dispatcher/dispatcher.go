package dispatcher

import (
	"go.uber.org/zap"

	"github.com/dshills/gapvim/internal/engine"
	"github.com/dshills/gapvim/internal/engine/history"
	"github.com/dshills/gapvim/internal/engine/ring"
	"github.com/dshills/gapvim/internal/input/key"
	"github.com/dshills/gapvim/internal/input/macro"
	"github.com/dshills/gapvim/internal/input/mode"
)

// Dispatcher interprets key events and drives the engine.
type Dispatcher struct {
	engine   *engine.Engine
	modes    *mode.Manager
	recorder *macro.Recorder
	player   *macro.Player
	save     SaveFunc
	config   Config
	logger   *zap.Logger

	// recent holds the latest keys; the last pendingKeys of them belong to
	// the command being typed.
	recent      *ring.Ring[key.Event]
	pendingKeys int

	// Normal mode state
	count    int
	operator rune

	cmdline []rune
	message string
}

// New creates a dispatcher for e. The engine must have been created with
// modes as its mode switcher.
func New(e *engine.Engine, modes *mode.Manager, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		engine: e,
		modes:  modes,
		config: DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.recorder == nil {
		d.recorder = macro.NewRecorder(nil)
	}
	d.player = macro.NewPlayer(d.recorder)
	d.recent = ring.New[key.Event](d.config.RecentKeys)
	return d
}

// Handle processes one key typed by the user.
func (d *Dispatcher) Handle(ev key.Event) {
	wasRecording := d.recorder.IsRecording()
	d.dispatch(ev)
	// The "q" that ends a recording is not part of it, and neither is the
	// "q{reg}" that starts one.
	if wasRecording && d.recorder.IsRecording() {
		d.recorder.Record(ev)
	}
}

// HandleAll processes a sequence of keys, e.g. from ParseSequence.
func (d *Dispatcher) HandleAll(events []key.Event) {
	for _, ev := range events {
		d.Handle(ev)
	}
}

// dispatch routes ev by mode. Replayed macro keys enter here, bypassing
// recording.
func (d *Dispatcher) dispatch(ev key.Event) {
	d.recent.Push(ev)
	d.pendingKeys = min(d.pendingKeys+1, d.recent.Cap())

	m := d.modes.Mode()
	if ce := d.logger.Check(zap.DebugLevel, "key"); ce != nil {
		ce.Write(zap.Stringer("key", ev), zap.Stringer("mode", m))
	}

	switch m {
	case mode.Insert:
		d.handleInsert(ev)
	case mode.Replace:
		d.handleReplace(ev)
	case mode.Command:
		d.handleCommandLine(ev)
	default:
		d.handleNormal(ev)
	}
}

// exec runs f count times as one undo unit.
func (d *Dispatcher) exec(f history.Factory, count int) {
	d.engine.Execute(f, uint(max(count, 1)), false)
}

// batch runs f as part of the current typing run.
func (d *Dispatcher) batch(f history.Factory) {
	d.engine.Execute(f, 1, true)
}

func (d *Dispatcher) switchMode(m mode.Mode) {
	d.exec(history.ChangeMode(m), 1)
}

// reset clears the partially typed normal mode command.
func (d *Dispatcher) reset() {
	d.count = 0
	d.operator = 0
	d.pendingKeys = 0
}

// Mode returns the current mode.
func (d *Dispatcher) Mode() mode.Mode {
	return d.modes.Mode()
}

// Pending returns the keys of the command being typed, e.g. "3d".
func (d *Dispatcher) Pending() string {
	n := min(d.pendingKeys, d.recent.Len())
	events := make([]key.Event, 0, n)
	for i := d.recent.Len() - n; i < d.recent.Len(); i++ {
		events = append(events, d.recent.At(i))
	}
	return key.FormatSequence(events)
}

// RecentKeys returns the most recent keys, oldest first.
func (d *Dispatcher) RecentKeys() []key.Event {
	return d.recent.Slice()
}

// CommandLine returns the text typed after ":".
func (d *Dispatcher) CommandLine() string {
	return string(d.cmdline)
}

// Message returns the latest status message.
func (d *Dispatcher) Message() string {
	return d.message
}

// Recording returns the register being recorded, or 0.
func (d *Dispatcher) Recording() rune {
	return d.recorder.CurrentRegister()
}

// Recorder returns the macro recorder.
func (d *Dispatcher) Recorder() *macro.Recorder {
	return d.recorder
}

func (d *Dispatcher) setError(err error) {
	d.message = "E: " + err.Error()
	d.logger.Debug("command failed", zap.Error(err))
}
