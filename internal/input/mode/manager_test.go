package mode

import "testing"

func TestManagerStartsInNormal(t *testing.T) {
	var m Manager
	if m.Mode() != Normal {
		t.Errorf("Mode() = %v, want normal", m.Mode())
	}
}

func TestManagerSwitch(t *testing.T) {
	m := NewManager()
	var transitions [][2]Mode
	m.OnChange(func(from, to Mode) {
		transitions = append(transitions, [2]Mode{from, to})
	})

	m.Switch(Insert)
	m.Switch(Insert)
	m.Switch(Normal)

	if len(transitions) != 2 {
		t.Fatalf("got %d transitions, want 2", len(transitions))
	}
	if transitions[0] != [2]Mode{Normal, Insert} || transitions[1] != [2]Mode{Insert, Normal} {
		t.Errorf("transitions = %v", transitions)
	}
	if m.Previous() != Insert {
		t.Errorf("Previous() = %v, want insert", m.Previous())
	}
}

func TestModeProperties(t *testing.T) {
	tests := []struct {
		mode    Mode
		name    string
		cursor  CursorStyle
		editing bool
	}{
		{Normal, "normal", CursorBlock, false},
		{Insert, "insert", CursorBar, true},
		{Replace, "replace", CursorUnderline, true},
		{Command, "command", CursorBar, false},
	}
	for _, tt := range tests {
		if tt.mode.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.mode.String(), tt.name)
		}
		if tt.mode.CursorStyle() != tt.cursor {
			t.Errorf("%s CursorStyle() = %v, want %v", tt.name, tt.mode.CursorStyle(), tt.cursor)
		}
		if tt.mode.Editing() != tt.editing {
			t.Errorf("%s Editing() = %v, want %v", tt.name, tt.mode.Editing(), tt.editing)
		}
	}
	if Insert.DisplayName() != "-- INSERT --" || Normal.DisplayName() != "" {
		t.Error("unexpected display names")
	}
}
