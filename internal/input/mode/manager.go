package mode

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Manager tracks the current mode and coordinates mode transitions.
// The zero value starts in Normal mode.
type Manager struct {
	current   Mode
	previous  Mode
	callbacks []ChangeCallback
}

// NewManager creates a mode manager in Normal mode.
func NewManager() *Manager {
	return &Manager{}
}

// Mode returns the current mode.
func (m *Manager) Mode() Mode {
	return m.current
}

// Previous returns the mode active before the last transition.
func (m *Manager) Previous() Mode {
	return m.previous
}

// Switch changes the current mode. Switching to the current mode is a no-op
// and does not notify callbacks.
func (m *Manager) Switch(to Mode) {
	if to == m.current {
		return
	}
	from := m.current
	m.previous = from
	m.current = to
	for _, cb := range m.callbacks {
		cb(from, to)
	}
}

// OnChange registers a callback for mode transitions.
func (m *Manager) OnChange(cb ChangeCallback) {
	if cb != nil {
		m.callbacks = append(m.callbacks, cb)
	}
}
