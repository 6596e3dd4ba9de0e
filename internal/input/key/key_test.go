package key

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"esc", KeyEscape},
		{"Escape", KeyEscape},
		{"CR", KeyEnter},
		{"bs", KeyBackspace},
		{" left ", KeyLeft},
		{"nope", KeyNone},
	}
	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	if KeyEnter.String() != "CR" || KeyRune.String() != "Rune" || Key(200).String() != "Key(200)" {
		t.Error("unexpected key names")
	}
	if !KeyUp.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey mismatch")
	}
}

func TestEventPredicates(t *testing.T) {
	a := NewRuneEvent('a', ModNone)
	if !a.IsChar() || a.IsModified() {
		t.Error("'a' should be a plain character")
	}
	upper := NewRuneEvent('A', ModShift)
	if !upper.IsChar() {
		t.Error("Shift+A should still be a character")
	}
	ctrlR := NewRuneEvent('r', ModCtrl)
	if ctrlR.IsChar() || !ctrlR.IsCtrl('r') || !ctrlR.IsCtrl('R') {
		t.Error("Ctrl-R predicates mismatch")
	}
	if !NewSpecialEvent(KeyEscape, ModNone).IsEscape() || NewSpecialEvent(KeyEscape, ModShift).IsEscape() {
		t.Error("IsEscape mismatch")
	}
	if !NewSpecialEvent(KeyEnter, ModNone).IsEnter() || !NewSpecialEvent(KeyBackspace, ModNone).IsBackspace() {
		t.Error("IsEnter/IsBackspace mismatch")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent('<', ModNone), "<lt>"},
		{NewRuneEvent('r', ModCtrl), "<C-r>"},
		{NewRuneEvent('x', ModCtrl|ModAlt), "<C-A-x>"},
		{NewSpecialEvent(KeyEscape, ModNone), "<Esc>"},
		{NewSpecialEvent(KeyLeft, ModShift), "<S-Left>"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"@", NewRuneEvent('@', ModNone)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"<cr>", NewSpecialEvent(KeyEnter, ModNone)},
		{"<C-r>", NewRuneEvent('r', ModCtrl)},
		{"<C-R>", NewRuneEvent('r', ModCtrl)},
		{"<S-Left>", NewSpecialEvent(KeyLeft, ModShift)},
		{"<Space>", NewRuneEvent(' ', ModNone)},
		{"<lt>", NewRuneEvent('<', ModNone)},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"<Esc", ErrUnmatchedBracket},
		{"<>", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
		{"<Nope>", ErrInvalidSpec},
		{"ab", ErrInvalidSpec},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestSequenceRoundTrip(t *testing.T) {
	const seq = "3dd<Esc>:wq<CR>i<lt>p><C-r>"
	events, err := ParseSequence(seq)
	if err != nil {
		t.Fatalf("ParseSequence() error = %v", err)
	}
	if len(events) != 13 {
		t.Fatalf("len(events) = %d, want 13", len(events))
	}
	if got := FormatSequence(events); got != seq {
		t.Errorf("FormatSequence() = %q, want %q", got, seq)
	}
}

func TestTextMarshaling(t *testing.T) {
	in := []Event{NewRuneEvent('q', ModNone), NewSpecialEvent(KeyBackspace, ModNone)}
	var out []Event
	for _, ev := range in {
		text, err := ev.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Event
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		out = append(out, got)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
