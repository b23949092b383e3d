package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 3)

	if s.Width() != 12 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 12x3", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 12)
	for y := range 3 {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, want blanks", y, got)
		}
	}
}

func TestScreenCellsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	// Writes past the edges are dropped
	s.SetStyled(-1, 0, 'x', Style{})
	s.SetStyled(4, 0, 'x', Style{})
	s.SetStyled(0, 2, 'x', Style{})
	if got := s.String(); got != "    \n    " {
		t.Errorf("String() = %q, want untouched screen", got)
	}

	if c := s.GetCell(9, 9); c.Rune != ' ' || c.Style != (Style{}) {
		t.Errorf("GetCell outside = %+v, want unstyled space", c)
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, want blanks", got)
	}
}

func TestScreenDrawTextStyled(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 1, "ok", " ok     "},
		{"clipped right", 6, "termo", "      te"},
		{"clipped left", -2, "termo", "rmo     "},
		{"multi-byte runes", 0, "você", "você    "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			s.DrawTextStyled(tc.x, 0, tc.text, Style{Fg: ColorGreen})
			if got := s.Row(0); got != tc.want {
				t.Errorf("Row(0) = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScreenStyleKeptPerCell(t *testing.T) {
	s := NewScreen(6, 1)
	st := Style{Fg: ColorBlack, Bg: ColorYellow}
	s.DrawTextStyled(2, 0, "ab", st)
	s.DrawText(4, 0, "c")

	if c := s.GetCell(2, 0); c.Rune != 'a' || c.Style != st {
		t.Errorf("GetCell(2, 0) = %+v, want 'a' with %+v", c, st)
	}
	if c := s.GetCell(4, 0); c.Style != (Style{}) {
		t.Errorf("DrawText should leave cells unstyled, got %+v", c.Style)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		width int
		text  string
		want  string
	}{
		{9, "amor", "  amor   "},
		{10, "amor", "   amor   "},
		{7, "gatinha", "gatinha"},
		{9, "não", "   não   "},
	}

	for _, tc := range tests {
		s := NewScreen(tc.width, 1)
		s.DrawTextCentered(0, tc.text, Style{})
		if got := s.Row(0); got != tc.want {
			t.Errorf("centered %q in %d = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestScreenClearResetsCells(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextStyled(0, 0, "abc", Style{Bg: ColorYellow})
	s.DrawTextStyled(0, 1, "def", Style{Bg: ColorGreen})
	s.Clear()

	for y := range 2 {
		for x := range 3 {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Style != (Style{}) {
				t.Errorf("after Clear cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "jogar")
	s.DrawText(0, 3, "comigo")

	s.Resize(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "joga\n    " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "joga  " {
		t.Errorf("after grow Row(0) = %q, want %q", got, "joga  ")
	}
	if got := s.Row(2); got != "      " {
		t.Errorf("new row = %q, want blanks", got)
	}
}
