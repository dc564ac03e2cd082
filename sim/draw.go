/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package sim

import (
	"github.com/gdamore/tcell/v2"
)

// Screen layout
const (
	ledTop     int = 2
	ledWidth   int = 8
	ledPitch   int = 10
	digitTop   int = 7
	lcdLeft    int = 14
	consoleTop int = 14
	helpTop    int = 19
)

var (
	styleText     = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleSegOn    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSegOff   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 20, 20))
	styleLCDOn    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(40, 70, 200))
	styleLCDOff   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(20, 20, 60)).Background(tcell.NewRGBColor(10, 10, 30))
	styleConsole  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	keyLabels     = [4]string{"[1/Q]", "[2/W]", "[3/A]", "[4/S]"}
	segmentPixels = [7][][2]int{
		{{1, 0}, {2, 0}}, // a
		{{3, 1}},         // b
		{{3, 3}},         // c
		{{1, 4}, {2, 4}}, // d
		{{0, 3}},         // e
		{{0, 1}},         // f
		{{1, 2}, {2, 2}}, // g
	}
)

// litSegments decodes an active-low segment byte, a to g
func litSegments(pattern byte) [7]bool {

	var lit [7]bool
	for i := range lit {
		lit[i] = pattern&(1<<uint(i)) == 0
	}
	return lit
}

// Draw repaints the whole panel
func (b *Board) Draw() {

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || b.screen == nil {
		return
	}

	s := b.screen
	s.Clear()
	drawText(s, 1, 0, styleTitle, "SIMON SAYS")

	// LEDs and the keys for their buttons
	for i, isOn := range b.leds {
		style := tcell.StyleDefault.Foreground(ledColours[i])
		fill := '░'
		if isOn {
			fill = '█'
		}

		x := 1 + i*ledPitch
		for dy := 0; dy < 3; dy++ {
			for dx := 0; dx < ledWidth; dx++ {
				s.SetContent(x+dx, ledTop+dy, fill, nil, style)
			}
		}
		drawText(s, x+1, ledTop+3, styleText, keyLabels[i])
	}

	// Score digits, tens on the left
	for i, pattern := range b.digits {
		drawDigit(s, 1+i*6, digitTop, pattern)
	}

	// LCD
	style := styleLCDOff
	if b.backlight {
		style = styleLCDOn
	}
	for row, line := range b.lcdLines {
		drawText(s, lcdLeft, digitTop+row, style, " "+line+" ")
	}

	// Serial console
	drawText(s, 1, consoleTop-1, styleTitle, "Serial")
	for row, line := range b.console {
		drawText(s, 1, consoleTop+row, styleConsole, line)
	}

	drawText(s, 1, helpTop, styleText, "Buttons: 1-4 or Q W A S    Quit: Esc")
	s.Show()
}

func drawDigit(s tcell.Screen, x, y int, pattern byte) {

	for seg, isLit := range litSegments(pattern) {
		style := styleSegOff
		if isLit {
			style = styleSegOn
		}

		ch := '┃'
		if seg == 0 || seg == 3 || seg == 6 {
			ch = '━'
		}

		for _, px := range segmentPixels[seg] {
			s.SetContent(x+px[0], y+px[1], ch, nil, style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {

	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += 1
	}
}
