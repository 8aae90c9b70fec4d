package window

import (
	"fmt"
	"sync"

	"github.com/ushitora-anqou/mcboy/constant"
)

type WindowEvent struct {
	Direction, Action uint8
}

type Window interface {
	DrawLine(ly int, scanline []uint8) error
	EnqueueAudioBuffer(buf []float32) error
}

// screen holds the shades of the last frame. DrawLine runs on the emulation
// goroutine while presentation may happen elsewhere.
type screen struct {
	srcPic    [constant.LCD_WIDTH * constant.LCD_HEIGHT]uint8
	mtxSrcPic sync.Mutex
}

func (s *screen) drawLine(ly int, scanline []uint8) error {
	if len(scanline) != constant.LCD_WIDTH {
		return fmt.Errorf(
			"Invalid length of scanline data: expected %d, got %d",
			constant.LCD_WIDTH,
			len(scanline),
		)
	}
	if ly < 0 || ly >= constant.LCD_HEIGHT {
		return fmt.Errorf("Invalid line: %d", ly)
	}
	s.mtxSrcPic.Lock()
	copy(s.srcPic[ly*constant.LCD_WIDTH:(ly+1)*constant.LCD_WIDTH], scanline)
	s.mtxSrcPic.Unlock()
	return nil
}

// snapshot copies the frame out.
func (s *screen) snapshot() []uint8 {
	s.mtxSrcPic.Lock()
	defer s.mtxSrcPic.Unlock()
	return append([]uint8(nil), s.srcPic[:]...)
}

// rgb returns the 8-bit color components of a shade.
func rgb(shade uint8) (uint8, uint8, uint8) {
	c := constant.COLOR_SHADES[shade&3]
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func checkAudioBuffer(buf []float32) error {
	if len(buf) != constant.AUDIO_SAMPLES*constant.CHANNELS {
		return fmt.Errorf("Invalid length of audio buffer: %d", len(buf))
	}
	return nil
}
