package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 3, '#', ColorRed)
	cell := s.GetCell(3, 3)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell color = %v, expected ColorRed", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(3, 3, '#')
	if s.GetCell(3, 3).Color != ColorDefault {
		t.Error("Set should reset color to default")
	}

	// Out of bounds cell is a default space
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected default space", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorGreen)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear left %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")

	expected := "hello"
	for i, r := range expected {
		if s.Get(2+i, 1) != r {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", r, 2+i, s.Get(2+i, 1))
		}
	}

	// Clipped text should not panic
	s.DrawText(18, 0, "overflow")
	if s.Get(18, 0) != 'o' || s.Get(19, 0) != 'v' {
		t.Error("DrawText should write visible portion of clipped text")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("Resize: got %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'A' {
		t.Error("Resize should preserve content inside new bounds")
	}

	s.Resize(12, 12)
	if s.Get(2, 2) != 'A' {
		t.Error("Growing resize should preserve content")
	}
	if s.Get(11, 11) != ' ' {
		t.Error("New cells after resize should be spaces")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	got := s.String()
	want := "abc\ndef"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if !strings.Contains(s.Row(1), "def") {
		t.Errorf("Row(1) = %q, want to contain %q", s.Row(1), "def")
	}
	if s.Row(5) != "   " {
		t.Errorf("Out of bounds Row should be blank, got %q", s.Row(5))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("DrawBox top corners wrong")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges wrong")
	}
}
