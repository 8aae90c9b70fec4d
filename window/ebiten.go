//go:build ebiten

package window

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/ushitora-anqou/mcboy/constant"
	"github.com/ushitora-anqou/mcboy/util"
)

func EbitenInitialize() *audio.Context {
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(constant.WINDOW_WIDTH, constant.WINDOW_HEIGHT)
	ebiten.SetWindowTitle(constant.WINDOW_TITLE)

	return audio.NewContext(constant.AUDIO_FREQ)
}

type EbitenWindow struct {
	screen
	pixels         []uint8
	audioPlayer    *audio.Player
	audioBuffer    [][]uint8
	mtxAudioBuffer sync.Mutex
}

func NewEbitenWindow(ctx *audio.Context) (*EbitenWindow, error) {
	if constant.CHANNELS != 2 {
		return nil, fmt.Errorf("Invalid channel: ebiten supports only 2 channels.")
	}

	wind := &EbitenWindow{
		pixels: make([]uint8, 4*constant.LCD_WIDTH*constant.LCD_HEIGHT),
	}
	player, err := ctx.NewPlayer(&ebitenAudioReader{wind})
	if err != nil {
		return nil, err
	}
	player.Play()
	wind.audioPlayer = player
	return wind, nil
}

func (wind *EbitenWindow) DrawLine(ly int, scanline []uint8) error {
	return wind.drawLine(ly, scanline)
}

// Event reads the keyboard state.
func (wind *EbitenWindow) Event() *WindowEvent {
	pressed := func(k ebiten.Key) uint8 {
		return util.BoolToU8(ebiten.IsKeyPressed(k))
	}
	event := &WindowEvent{}
	event.Direction |= pressed(ebiten.KeyW) << constant.DIR_UP
	event.Direction |= pressed(ebiten.KeyA) << constant.DIR_LEFT
	event.Direction |= pressed(ebiten.KeyD) << constant.DIR_RIGHT
	event.Direction |= pressed(ebiten.KeyS) << constant.DIR_DOWN
	event.Action |= pressed(ebiten.KeyK) << constant.ACT_A
	event.Action |= pressed(ebiten.KeyJ) << constant.ACT_B
	event.Action |= pressed(ebiten.KeyEnter) << constant.ACT_START
	event.Action |= pressed(ebiten.KeySpace) << constant.ACT_SELECT
	return event
}

func (wind *EbitenWindow) Render(img *ebiten.Image) {
	for off, shade := range wind.snapshot() {
		r, g, b := rgb(shade)
		wind.pixels[off*4+0] = r
		wind.pixels[off*4+1] = g
		wind.pixels[off*4+2] = b
		wind.pixels[off*4+3] = 0xff
	}
	img.WritePixels(wind.pixels)
}

func (wind *EbitenWindow) EnqueueAudioBuffer(buf []float32) error {
	if err := checkAudioBuffer(buf); err != nil {
		return err
	}

	// signed, 16-bit, and little endian
	bufU := make([]uint8, len(buf)*2)
	for i, v := range buf {
		val := int16(toPCM16(v))
		bufU[i*2] = uint8(val)
		bufU[i*2+1] = uint8(val >> 8)
	}

	wind.mtxAudioBuffer.Lock()
	defer wind.mtxAudioBuffer.Unlock()

	if len(wind.audioBuffer) >= constant.AUDIO_QUEUE_SIZE {
		wind.audioBuffer = wind.audioBuffer[1:] // Discard the old one
	}
	wind.audioBuffer = append(wind.audioBuffer, bufU)

	return nil
}

func (wind *EbitenWindow) Close() error {
	return wind.audioPlayer.Close()
}

type ebitenAudioReader struct {
	wind *EbitenWindow
}

func (r *ebitenAudioReader) Read(buf []uint8) (int, error) {
	wind := r.wind
	wind.mtxAudioBuffer.Lock()
	defer wind.mtxAudioBuffer.Unlock()

	if len(wind.audioBuffer) == 0 {
		// Silence
		length := constant.AUDIO_SAMPLES * constant.CHANNELS * 2
		if len(buf) < length {
			length = len(buf)
		}
		length &^= 3
		for i := 0; i < length; i++ {
			buf[i] = 0
		}
		return length, nil
	}

	src := wind.audioBuffer[0]
	length := copy(buf, src)
	if length == len(src) {
		wind.audioBuffer = wind.audioBuffer[1:]
	} else {
		wind.audioBuffer[0] = src[length:]
	}

	return length, nil
}
