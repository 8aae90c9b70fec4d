//go:build sdl2

package window

// typedef float Float32;
// typedef unsigned char Uint8;
// void OnAudioPlayback(void *userdata, Uint8 *stream, int len);
import "C"
import (
	"unsafe"

	"github.com/mattn/go-pointer"
	"github.com/ushitora-anqou/mcboy/constant"
	"github.com/veandco/go-sdl2/sdl"
)

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
}

type SDLWindow struct {
	screen
	window                    *sdl.Window
	renderer                  *sdl.Renderer
	texture                   *sdl.Texture
	prevAction, prevDirection uint8
	audioDevice               sdl.AudioDeviceID
	userdata                  unsafe.Pointer
	audioBuffer               [][]C.Float32 // guarded by sdl.LockAudioDevice(audioDevice)
}

func NewSDLWindow() (*SDLWindow, error) {
	window, err := sdl.CreateWindow(
		constant.WINDOW_TITLE,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		constant.WINDOW_WIDTH,
		constant.WINDOW_HEIGHT,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, err
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		constant.LCD_WIDTH,
		constant.LCD_HEIGHT,
	)
	if err != nil {
		return nil, err
	}

	wind := &SDLWindow{
		window:   window,
		renderer: renderer,
		texture:  texture,
	}
	wind.userdata = pointer.Save(wind)

	audioDevice, err := sdl.OpenAudioDevice(
		"",
		false,
		&sdl.AudioSpec{
			Freq:     constant.AUDIO_FREQ,
			Format:   sdl.AUDIO_F32,
			Channels: constant.CHANNELS,
			Samples:  constant.AUDIO_SAMPLES,
			Callback: sdl.AudioCallback(C.OnAudioPlayback),
			UserData: wind.userdata,
		},
		nil,
		0,
	)
	if err != nil {
		pointer.Unref(wind.userdata)
		return nil, err
	}
	sdl.PauseAudioDevice(audioDevice, false)
	wind.audioDevice = audioDevice

	return wind, nil
}

func (wind *SDLWindow) DrawLine(ly int, scanline []uint8) error {
	return wind.drawLine(ly, scanline)
}

var sdlKeys = map[sdl.Keycode]struct {
	bit    uint8
	action bool
}{
	sdl.K_w:      {constant.DIR_UP, false},
	sdl.K_a:      {constant.DIR_LEFT, false},
	sdl.K_d:      {constant.DIR_RIGHT, false},
	sdl.K_s:      {constant.DIR_DOWN, false},
	sdl.K_k:      {constant.ACT_A, true},
	sdl.K_j:      {constant.ACT_B, true},
	sdl.K_RETURN: {constant.ACT_START, true},
	sdl.K_SPACE:  {constant.ACT_SELECT, true},
}

func (wind *SDLWindow) HandleEvents() (bool, *WindowEvent) {
	we := &WindowEvent{
		Action:    wind.prevAction,
		Direction: wind.prevDirection,
	}
	escape := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			escape = true

		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				escape = true
				continue
			}
			key, ok := sdlKeys[ev.Keysym.Sym]
			if !ok {
				continue
			}
			state := &we.Direction
			if key.action {
				state = &we.Action
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				*state |= 1 << key.bit
			case sdl.KEYUP:
				*state &^= 1 << key.bit
			}
		}
	}

	wind.prevAction = we.Action
	wind.prevDirection = we.Direction

	return escape, we
}

func (wind *SDLWindow) UpdateScreen() error {
	pixels, _, err := wind.texture.Lock(nil)
	if err != nil {
		return err
	}
	pic := wind.snapshot()
	for off, shade := range pic {
		r, g, b := rgb(shade)
		pixels[off*4+0] = b
		pixels[off*4+1] = g
		pixels[off*4+2] = r
		pixels[off*4+3] = 0xff
	}
	wind.texture.Unlock()

	wind.renderer.Clear()
	wind.renderer.Copy(wind.texture, nil, nil)
	wind.renderer.Present()

	return nil
}

func (wind *SDLWindow) EnqueueAudioBuffer(buf []float32) error {
	if err := checkAudioBuffer(buf); err != nil {
		return err
	}

	// Convert before locking; the callback runs on the audio thread.
	bufC := make([]C.Float32, len(buf))
	for i, v := range buf {
		bufC[i] = C.Float32(v)
	}

	sdl.LockAudioDevice(wind.audioDevice)
	defer sdl.UnlockAudioDevice(wind.audioDevice)

	if len(wind.audioBuffer) >= constant.AUDIO_QUEUE_SIZE {
		wind.popAudioBuffer() // Discard the old one
	}
	wind.audioBuffer = append(wind.audioBuffer, bufC)

	return nil
}

// popAudioBuffer must be called with the audio device locked.
func (wind *SDLWindow) popAudioBuffer() []C.Float32 {
	if len(wind.audioBuffer) == 0 {
		return nil
	}

	ret := wind.audioBuffer[0]
	wind.audioBuffer = wind.audioBuffer[1:]
	return ret
}

func (wind *SDLWindow) Close() {
	sdl.CloseAudioDevice(wind.audioDevice)
	pointer.Unref(wind.userdata)
	wind.texture.Destroy()
	wind.renderer.Destroy()
	wind.window.Destroy()
	sdl.Quit()
}

//export OnAudioPlayback
func OnAudioPlayback(userdata unsafe.Pointer, stream *C.Uint8, length C.int) {
	n := int(length) / 4
	buf := unsafe.Slice((*C.Float32)(unsafe.Pointer(stream)), n)
	wind := pointer.Restore(userdata).(*SDLWindow)
	src := wind.popAudioBuffer()

	if src == nil {
		for i := range buf {
			buf[i] = 0
		}
	} else {
		copy(buf, src)
	}
}
