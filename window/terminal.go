package window

import (
	"sync"

	"github.com/gdamore/tcell"
	"github.com/ushitora-anqou/mcboy/constant"
)

// Terminals report key presses but no releases, so a press is held for
// this many frames.
const holdFrames = 8

// TerminalWindow draws the screen with half blocks, two pixels per cell.
type TerminalWindow struct {
	screen
	scr tcell.Screen

	mtxKeys sync.Mutex
	held    map[uint8]int // key bit (direction in the low nibble) -> frames left
	escape  bool
}

func NewTerminalWindow() (*TerminalWindow, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := scr.Init(); err != nil {
		return nil, err
	}
	scr.HideCursor()
	scr.Clear()

	wind := &TerminalWindow{
		scr:  scr,
		held: map[uint8]int{},
	}
	go wind.pollEvents()
	return wind, nil
}

func (wind *TerminalWindow) pollEvents() {
	for {
		ev := wind.scr.PollEvent()
		if ev == nil {
			return
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		wind.mtxKeys.Lock()
		switch kev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			wind.escape = true
		case tcell.KeyEnter:
			wind.held[4+constant.ACT_START] = holdFrames
		case tcell.KeyRune:
			if bit, ok := keyBits[kev.Rune()]; ok {
				wind.held[bit] = holdFrames
			}
		}
		wind.mtxKeys.Unlock()
	}
}

var keyBits = map[rune]uint8{
	'w': constant.DIR_UP,
	'a': constant.DIR_LEFT,
	's': constant.DIR_DOWN,
	'd': constant.DIR_RIGHT,
	'k': 4 + constant.ACT_A,
	'j': 4 + constant.ACT_B,
	' ': 4 + constant.ACT_SELECT,
}

func (wind *TerminalWindow) DrawLine(ly int, scanline []uint8) error {
	return wind.drawLine(ly, scanline)
}

// Audio is not played in a terminal.
func (wind *TerminalWindow) EnqueueAudioBuffer(buf []float32) error {
	return checkAudioBuffer(buf)
}

// HandleEvents returns the buttons held for the next frame and whether the
// user asked to quit.
func (wind *TerminalWindow) HandleEvents() (bool, *WindowEvent) {
	wind.mtxKeys.Lock()
	defer wind.mtxKeys.Unlock()

	we := &WindowEvent{}
	for bit, left := range wind.held {
		if bit < 4 {
			we.Direction |= 1 << bit
		} else {
			we.Action |= 1 << (bit - 4)
		}
		if left <= 1 {
			delete(wind.held, bit)
		} else {
			wind.held[bit] = left - 1
		}
	}
	return wind.escape, we
}

func cellColor(shade uint8) tcell.Color {
	r, g, b := rgb(shade)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (wind *TerminalWindow) UpdateScreen() error {
	pic := wind.snapshot()
	for row := 0; row < constant.LCD_HEIGHT; row += 2 {
		for col := 0; col < constant.LCD_WIDTH; col++ {
			upper := pic[row*constant.LCD_WIDTH+col]
			lower := pic[(row+1)*constant.LCD_WIDTH+col]
			style := tcell.StyleDefault.
				Foreground(cellColor(upper)).
				Background(cellColor(lower))
			wind.scr.SetContent(col, row/2, '▀', nil, style)
		}
	}
	wind.scr.Show()
	return nil
}

func (wind *TerminalWindow) Close() {
	wind.scr.Fini()
}
