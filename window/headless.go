package window

import (
	"strings"

	"github.com/ushitora-anqou/mcboy/constant"
)

// shadeRunes is used by Text, from lightest to darkest.
var shadeRunes = [4]rune{' ', '░', '▒', '█'}

// HeadlessWindow keeps the last frame in memory and, when a recorder is
// attached, the whole audio output.
type HeadlessWindow struct {
	screen
	recorder *WAVRecorder
	frames   int
	buffers  int
}

func NewHeadlessWindow(recorder *WAVRecorder) *HeadlessWindow {
	return &HeadlessWindow{recorder: recorder}
}

func (wind *HeadlessWindow) DrawLine(ly int, scanline []uint8) error {
	if err := wind.drawLine(ly, scanline); err != nil {
		return err
	}
	if ly == constant.LCD_HEIGHT-1 {
		wind.frames++
	}
	return nil
}

func (wind *HeadlessWindow) EnqueueAudioBuffer(buf []float32) error {
	if err := checkAudioBuffer(buf); err != nil {
		return err
	}
	wind.buffers++
	if wind.recorder != nil {
		wind.recorder.Append(buf)
	}
	return nil
}

// Frame returns a copy of the shades of the last drawn frame.
func (wind *HeadlessWindow) Frame() []uint8 {
	return wind.snapshot()
}

// Frames returns how many complete frames were drawn.
func (wind *HeadlessWindow) Frames() int {
	return wind.frames
}

// AudioBuffers returns how many audio buffers were received.
func (wind *HeadlessWindow) AudioBuffers() int {
	return wind.buffers
}

// Text renders the frame with one rune per pixel and one line per row.
func (wind *HeadlessWindow) Text() string {
	pic := wind.snapshot()
	var sb strings.Builder
	for row := 0; row < constant.LCD_HEIGHT; row++ {
		for col := 0; col < constant.LCD_WIDTH; col++ {
			sb.WriteRune(shadeRunes[pic[row*constant.LCD_WIDTH+col]&3])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Close flushes the audio recording, if any.
func (wind *HeadlessWindow) Close() error {
	if wind.recorder == nil {
		return nil
	}
	return wind.recorder.Close()
}
