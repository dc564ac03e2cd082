/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package lcd

import (
	"errors"
	"strings"
	"testing"
)

func newTestDevice(t *testing.T) (*Device, *Emulator) {

	t.Helper()
	emu := NewEmulator(LCD_ADDRESS, 20, 4)
	dev := New(emu, LCD_ADDRESS, 20, 4)
	if err := dev.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	return dev, emu
}

func pad(s string) string {

	return s + strings.Repeat(" ", 20-len(s))
}

func TestInitLeavesBlankScreen(t *testing.T) {

	_, emu := newTestDevice(t)

	for row, line := range emu.Lines() {
		if line != pad("") {
			t.Errorf("Row %d: expected blank, got %q", row, line)
		}
	}
	if !emu.Backlight() {
		t.Error("Expected the backlight on after init")
	}
}

func TestShowLines(t *testing.T) {

	dev, emu := newTestDevice(t)

	dev.ShowLines("Good Job!", "Level: 12")
	if dev.Err() != nil {
		t.Fatalf("Unexpected error: %v", dev.Err())
	}

	lines := emu.Lines()
	if lines[0] != pad("Good Job!") || lines[1] != pad("Level: 12") {
		t.Errorf("Unexpected screen %q", lines)
	}

	// A second call replaces the first completely
	dev.ShowLines("Simon Says Game", "")
	lines = emu.Lines()
	if lines[0] != pad("Simon Says Game") || lines[1] != pad("") {
		t.Errorf("Unexpected screen %q", lines)
	}
}

func TestShowLinesTruncates(t *testing.T) {

	dev, emu := newTestDevice(t)

	dev.ShowLines("0123456789abcdefghijKLMN", "")
	if got := emu.Lines()[0]; got != "0123456789abcdefghij" {
		t.Errorf("Expected the line cut at 20 columns, got %q", got)
	}
	if got := emu.Lines()[1]; got != pad("") {
		t.Errorf("Expected the overflow not to wrap, got %q", got)
	}
}

func TestSetCursorRows(t *testing.T) {

	dev, emu := newTestDevice(t)

	for row := 0; row < 4; row++ {
		if err := dev.SetCursor(row, row); err != nil {
			t.Fatalf("SetCursor(%d, %d): %v", row, row, err)
		}
		if err := dev.Print("*"); err != nil {
			t.Fatalf("Print: %v", err)
		}
	}

	for row, line := range emu.Lines() {
		want := pad(strings.Repeat(" ", row) + "*")
		if line != want {
			t.Errorf("Row %d: expected %q, got %q", row, want, line)
		}
	}

	if err := dev.SetCursor(0, 4); err == nil {
		t.Error("Expected an error for row 4")
	}
	if err := dev.SetCursor(20, 0); err == nil {
		t.Error("Expected an error for column 20")
	}
}

func TestShowLinesTruncatesByCharacter(t *testing.T) {

	dev, emu := newTestDevice(t)

	// 19 ASCII characters then a two-byte one: 21 bytes, 20 characters
	dev.ShowLines("0123456789abcdefghié", "")
	if got := emu.Lines()[0]; got != "0123456789abcdefghi?" {
		t.Errorf("Expected the last character kept whole, got %q", got)
	}

	dev.ShowLines("ééééééééééééééééééééxy", "")
	if got := emu.Lines()[0]; got != strings.Repeat("?", 20) {
		t.Errorf("Expected 20 characters, got %q", got)
	}
}

func TestPrintReplacesNonASCII(t *testing.T) {

	dev, emu := newTestDevice(t)

	dev.ShowLines("Über", "")
	if got := emu.Lines()[0]; got != pad("?ber") {
		t.Errorf("Expected %q, got %q", pad("?ber"), got)
	}
}

func TestBacklight(t *testing.T) {

	dev, emu := newTestDevice(t)

	if err := dev.Backlight(false); err != nil {
		t.Fatalf("Backlight: %v", err)
	}
	if emu.Backlight() {
		t.Error("Expected the backlight off")
	}

	// Later writes keep it off
	dev.ShowLines("x", "")
	if emu.Backlight() {
		t.Error("Expected the backlight to stay off")
	}
}

type failingBus struct{}

func (failingBus) Tx(uint16, []byte, []byte) error { return errors.New("nack") }

func TestInitReportsMissingDevice(t *testing.T) {

	dev := New(failingBus{}, LCD_ADDRESS, 16, 2)

	err := dev.Init()
	if err == nil || !strings.Contains(err.Error(), "0x27") {
		t.Errorf("Expected an error naming the address, got %v", err)
	}

	dev.ShowLines("a", "b")
	if dev.Err() == nil {
		t.Error("Expected ShowLines to keep the bus error")
	}
}

func TestEmulatorIgnoresOtherAddresses(t *testing.T) {

	emu := NewEmulator(LCD_ADDRESS, 16, 2)
	if err := emu.Tx(0x3F, []byte{0}, nil); err == nil {
		t.Error("Expected an error for the wrong address")
	}
}
