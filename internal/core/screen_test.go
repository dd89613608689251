package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 22)

	if s.Width() != 40 || s.Height() != 22 {
		t.Fatalf("size = %dx%d, expected 40x22", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetWithColor(3, 2, '█', ColorBlue)

	c := s.GetCell(3, 2)
	if c.Rune != '█' || c.Color != ColorBlue {
		t.Errorf("GetCell(3, 2) = %+v, expected blue wall", c)
	}

	// Out of bounds writes are ignored, reads are blank.
	s.SetWithColor(-1, 0, 'X', ColorRed)
	s.SetWithColor(10, 0, 'X', ColorRed)
	s.SetWithColor(0, 5, 'X', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawText(0, 0, "abcd")
	s.Clear()

	if got := s.Row(0); got != "    " {
		t.Errorf("Row(0) after Clear = %q, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextWithColor(1, 1, "Score: 10", ColorYellow)

	if got := s.Row(1); got != " Score: 10  " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(1, 1).Color != ColorYellow {
		t.Error("text should carry its colour")
	}

	// Clipped at the right edge.
	s.DrawText(10, 0, "Level")
	if s.Get(10, 0) != 'L' || s.Get(11, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "GAME OVER!", ColorRed)

	if got := s.Row(1); got != "     GAME OVER!     " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(2, 1, "xx")
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGreen)

	expected := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(5) != strings.Repeat(" ", 15) {
		t.Errorf("rows dropped by shrinking should come back blank, got %q", s.Row(5))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cde")

	if got := s.String(); got != "ab \ncde" {
		t.Errorf("String() = %q", got)
	}
}
