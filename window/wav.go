package window

import (
	"fmt"
	"math"
	"os"

	"github.com/ushitora-anqou/mcboy/constant"
	"github.com/youpy/go-wav"
)

// WAVRecorder keeps every audio buffer in memory and writes them as a
// 16-bit stereo WAV file on Close.
type WAVRecorder struct {
	filename string
	buffer   []wav.Sample
}

func NewWAVRecorder(filename string) *WAVRecorder {
	return &WAVRecorder{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}
}

func toPCM16(v float32) int {
	v = float32(math.Max(-1, math.Min(1, float64(v))))
	return int(v * 0x7fff)
}

func (r *WAVRecorder) Append(buf []float32) {
	for i := 0; i+1 < len(buf); i += constant.CHANNELS {
		s := wav.Sample{}
		s.Values[0] = toPCM16(buf[i])
		s.Values[1] = toPCM16(buf[i+1])
		r.buffer = append(r.buffer, s)
	}
}

func (r *WAVRecorder) Samples() int {
	return len(r.buffer)
}

func (r *WAVRecorder) Close() (rerr error) {
	f, err := os.Create(r.filename)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wav: %w", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(r.buffer)), constant.CHANNELS, constant.AUDIO_FREQ, 16)
	if enc == nil {
		return fmt.Errorf("wav: bad parameters for wav encoding")
	}
	if err := enc.WriteSamples(r.buffer); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
