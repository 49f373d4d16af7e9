package core

import "testing"

func TestFrameDrawing(t *testing.T) {
	s := NewScreen(20, 10)
	f := NewFrame(s, 16.0, KeyNone)

	f.ClsBg(ColorNavy)
	f.Set(0, 3, ColorYellow, ColorBlack, '@')
	f.Print(0, 0, "Score: 1")
	f.PrintCentered(5, "Hi")

	if s.GetCell(0, 3) != (Cell{Rune: '@', FG: ColorYellow, BG: ColorBlack}) {
		t.Errorf("Set did not reach the screen, got %+v", s.GetCell(0, 3))
	}
	if s.Row(0)[:8] != "Score: 1" {
		t.Errorf("Print wrote %q", s.Row(0))
	}
	if s.Get(9, 5) != 'H' || s.Get(10, 5) != 'i' {
		t.Errorf("PrintCentered wrote %q", s.Row(5))
	}
	if s.GetCell(19, 9).BG != ColorNavy {
		t.Error("ClsBg should paint the background")
	}

	f.Cls()
	if s.GetCell(19, 9) != blank {
		t.Error("Cls should blank the screen")
	}
}

func TestFrameQuit(t *testing.T) {
	f := NewFrame(NewScreen(1, 1), 0, KeyQuit)
	if f.Quitting() {
		t.Fatal("new frame should not be quitting")
	}
	f.RequestQuit()
	if !f.Quitting() {
		t.Error("RequestQuit should set Quitting")
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyNone:    "None",
		KeyFlap:    "Flap",
		KeyConfirm: "Confirm",
		KeyQuit:    "Quit",
		Key(99):    "Unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, expected %q", int(k), got, want)
		}
	}
}
