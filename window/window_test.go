package window

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ushitora-anqou/mcboy/constant"
	"github.com/youpy/go-wav"
)

func TestDrawLineValidation(t *testing.T) {
	wind := NewHeadlessWindow(nil)
	if err := wind.DrawLine(0, make([]uint8, constant.LCD_WIDTH-1)); err == nil {
		t.Fatalf("short scanline accepted")
	}
	if err := wind.DrawLine(constant.LCD_HEIGHT, make([]uint8, constant.LCD_WIDTH)); err == nil {
		t.Fatalf("line %d accepted", constant.LCD_HEIGHT)
	}
	if err := wind.DrawLine(-1, make([]uint8, constant.LCD_WIDTH)); err == nil {
		t.Fatalf("line -1 accepted")
	}
}

func TestHeadlessFrame(t *testing.T) {
	wind := NewHeadlessWindow(nil)
	line := make([]uint8, constant.LCD_WIDTH)
	for i := range line {
		line[i] = uint8(i % 4)
	}
	for ly := 0; ly < constant.LCD_HEIGHT; ly++ {
		if err := wind.DrawLine(ly, line); err != nil {
			t.Fatalf("DrawLine(%d): %v", ly, err)
		}
	}
	if got := wind.Frames(); got != 1 {
		t.Fatalf("frames: expected 1, got %d", got)
	}

	frame := wind.Frame()
	if frame[constant.LCD_WIDTH*10+3] != 3 {
		t.Fatalf("pixel (3, 10): expected 3, got %d", frame[constant.LCD_WIDTH*10+3])
	}
	frame[0] = 2
	if wind.Frame()[0] != 0 {
		t.Fatalf("Frame must return a copy")
	}

	text := wind.Text()
	rows := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(rows) != constant.LCD_HEIGHT {
		t.Fatalf("text rows: expected %d, got %d", constant.LCD_HEIGHT, len(rows))
	}
	if !strings.HasPrefix(rows[0], " ░▒█") {
		t.Fatalf("text row: got %q", rows[0][:12])
	}
}

func TestHeadlessAudio(t *testing.T) {
	wind := NewHeadlessWindow(nil)
	if err := wind.EnqueueAudioBuffer(make([]float32, 3)); err == nil {
		t.Fatalf("bad audio buffer accepted")
	}
	if err := wind.EnqueueAudioBuffer(make([]float32, constant.AUDIO_SAMPLES*constant.CHANNELS)); err != nil {
		t.Fatalf("EnqueueAudioBuffer: %v", err)
	}
	if got := wind.AudioBuffers(); got != 1 {
		t.Fatalf("buffers: expected 1, got %d", got)
	}
	if err := wind.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestWAVRecording(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.wav")
	wind := NewHeadlessWindow(NewWAVRecorder(filename))

	buf := make([]float32, constant.AUDIO_SAMPLES*constant.CHANNELS)
	buf[0], buf[1] = 0.5, -2
	for i := 0; i < 2; i++ {
		if err := wind.EnqueueAudioBuffer(buf); err != nil {
			t.Fatalf("EnqueueAudioBuffer: %v", err)
		}
	}
	if got := wind.recorder.Samples(); got != 2*constant.AUDIO_SAMPLES {
		t.Fatalf("samples: expected %d, got %d", 2*constant.AUDIO_SAMPLES, got)
	}
	if err := wind.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r := wav.NewReader(f)
	format, err := r.Format()
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if format.NumChannels != constant.CHANNELS || format.SampleRate != constant.AUDIO_FREQ || format.BitsPerSample != 16 {
		t.Fatalf("format: got %+v", format)
	}
	samples, err := r.ReadSamples(1)
	if err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("ReadSamples: expected 1 sample, got %d", len(samples))
	}
	if samples[0].Values[0] != 0x3fff || int16(samples[0].Values[1]) != -0x7fff {
		t.Fatalf("first sample: got %v", samples[0].Values)
	}
}

func TestToPCM16(t *testing.T) {
	cases := []struct {
		in       float32
		expected int
	}{
		{0, 0},
		{1, 0x7fff},
		{-1, -0x7fff},
		{3, 0x7fff},
		{-3, -0x7fff},
	}
	for _, c := range cases {
		if got := toPCM16(c.in); got != c.expected {
			t.Errorf("toPCM16(%v): expected %d, got %d", c.in, c.expected, got)
		}
	}
}

type fakeClock struct {
	cur   time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time {
	return c.cur
}

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.cur = c.cur.Add(d)
}

func newFakeSynchronizer(c *fakeClock) *TimeSynchronizer {
	ts := NewTimeSynchronizer(50)
	ts.prevTime = c.cur
	ts.now = c.now
	ts.sleep = c.sleep
	return ts
}

func TestSynchronizerSleeps(t *testing.T) {
	c := &fakeClock{cur: time.Unix(0, 0)}
	ts := newFakeSynchronizer(c)

	c.cur = c.cur.Add(5 * time.Millisecond)
	ts.MaySleep()
	if len(c.slept) != 1 || c.slept[0] != 15*time.Millisecond {
		t.Fatalf("slept: expected [15ms], got %v", c.slept)
	}
}

func TestSynchronizerCatchesUp(t *testing.T) {
	c := &fakeClock{cur: time.Unix(0, 0)}
	ts := newFakeSynchronizer(c)

	// One late frame is made up for by the next one.
	c.cur = c.cur.Add(30 * time.Millisecond)
	ts.MaySleep()
	c.cur = c.cur.Add(5 * time.Millisecond)
	ts.MaySleep()
	if len(c.slept) != 1 || c.slept[0] != 5*time.Millisecond {
		t.Fatalf("slept: expected [5ms], got %v", c.slept)
	}
}

func TestSynchronizerResyncs(t *testing.T) {
	c := &fakeClock{cur: time.Unix(0, 0)}
	ts := newFakeSynchronizer(c)

	c.cur = c.cur.Add(time.Second)
	ts.MaySleep()
	if !ts.prevTime.Equal(c.cur) {
		t.Fatalf("prevTime: expected %v, got %v", c.cur, ts.prevTime)
	}
	c.cur = c.cur.Add(5 * time.Millisecond)
	ts.MaySleep()
	if len(c.slept) != 1 || c.slept[0] != 15*time.Millisecond {
		t.Fatalf("slept: expected [15ms], got %v", c.slept)
	}
}
