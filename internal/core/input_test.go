package core

import "testing"

func TestLetterIntent(t *testing.T) {
	tests := []struct {
		name   string
		in     rune
		action Action
		letter rune
	}{
		{"lowercase", 'a', ActionLetter, 'a'},
		{"uppercase normalised", 'Q', ActionLetter, 'q'},
		{"last letter", 'z', ActionLetter, 'z'},
		{"digit ignored", '7', ActionNone, 0},
		{"accented ignored", 'é', ActionNone, 0},
		{"space ignored", ' ', ActionNone, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LetterIntent(tc.in)
			if got.Action != tc.action || got.Letter != tc.letter {
				t.Errorf("LetterIntent(%q) = %+v, expected {%v %q}", tc.in, got, tc.action, tc.letter)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionSubmit.String() != "Submit" {
		t.Errorf("ActionSubmit.String() = %q", ActionSubmit.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
