package apu

type envelope struct {
	initVolume, period int
	increase           bool

	currentVolume, counter int
}

func (e *envelope) set(val uint8) {
	e.initVolume = int(val >> 4)
	e.increase = (val>>3)&1 != 0
	e.period = int(val & 7)
}

func (e *envelope) trigger() {
	e.currentVolume = e.initVolume
	e.counter = e.period
}

// step runs at 64 Hz.
func (e *envelope) step() {
	if e.period == 0 {
		return
	}
	e.counter--
	if e.counter > 0 {
		return
	}
	e.counter = e.period
	if e.increase && e.currentVolume < 0xf {
		e.currentVolume++
	} else if !e.increase && e.currentVolume > 0 {
		e.currentVolume--
	}
}

func (e *envelope) getAmplitude(src float32 /* NOTE: -1 to 1 */) float32 {
	return src * float32(e.currentVolume) / 15
}

type sweep struct {
	period, shift int
	decrement     bool

	enabled bool
	shadow  int
	counter int
}

func (s *sweep) set(val uint8) {
	s.period = int(val>>4) & 7
	s.decrement = (val>>3)&1 != 0
	s.shift = int(val & 7)
}

func (s *sweep) reload() {
	s.counter = s.period
	if s.period == 0 {
		s.counter = 8
	}
}

func (s *sweep) calc() int {
	delta := s.shadow >> s.shift
	if s.decrement {
		return s.shadow - delta
	}
	return s.shadow + delta
}

type length struct {
	max, counter int
	enabled      bool
}

func (l *length) load(v int) {
	l.counter = l.max - v
}

// step runs at 256 Hz and reports that the counter expired.
func (l *length) step() bool {
	if !l.enabled || l.counter == 0 {
		return false
	}
	l.counter--
	return l.counter == 0
}

func (l *length) trigger() {
	if l.counter == 0 {
		l.counter = l.max
	}
}

var dutyTable = [4][8]float32{
	{-1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, +1.0},
	{+1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, +1.0},
	{+1.0, -1.0, -1.0, -1.0, -1.0, +1.0, +1.0, +1.0},
	{-1.0, +1.0, +1.0, +1.0, +1.0, +1.0, +1.0, -1.0},
}

type channelSquare struct {
	enabled, dacEnabled bool
	duty, dutyPos       int
	freq, timer         int
	length              length
	env                 envelope
	sweep               *sweep
}

func newChannelSquare(withSweep bool) channelSquare {
	ch := channelSquare{length: length{max: 64}}
	if withSweep {
		ch.sweep = &sweep{}
	}
	return ch
}

func (ch *channelSquare) setLengthAndWavePatternDuty(val uint8) {
	ch.duty = int(val >> 6)
	ch.length.load(int(val & 0x3f))
}

func (ch *channelSquare) setEnvelope(val uint8) {
	ch.env.set(val)
	ch.dacEnabled = val&0xf8 != 0
	if !ch.dacEnabled {
		ch.enabled = false
	}
}

func (ch *channelSquare) setFreqLow(val uint8) {
	ch.freq = (ch.freq &^ 0xff) | int(val)
}

func (ch *channelSquare) setFreqHigh(val uint8) {
	ch.freq = (ch.freq & 0xff) | (int(val&7) << 8)
	ch.length.enabled = (val>>6)&1 != 0
}

func (ch *channelSquare) trigger() {
	ch.enabled = ch.dacEnabled
	ch.length.trigger()
	ch.timer = (2048 - ch.freq) * 4
	ch.env.trigger()

	if s := ch.sweep; s != nil {
		s.shadow = ch.freq
		s.reload()
		s.enabled = s.period != 0 || s.shift != 0
		if s.shift != 0 && s.calc() > 2047 {
			ch.enabled = false
		}
	}
}

func (ch *channelSquare) tick() {
	ch.timer--
	if ch.timer <= 0 {
		ch.timer = (2048 - ch.freq) * 4
		ch.dutyPos = (ch.dutyPos + 1) % 8
	}
}

func (ch *channelSquare) stepLength() {
	if ch.length.step() {
		ch.enabled = false
	}
}

// stepSweep runs at 128 Hz.
func (ch *channelSquare) stepSweep() {
	s := ch.sweep
	if s == nil {
		return
	}
	s.counter--
	if s.counter > 0 {
		return
	}
	s.reload()
	if !s.enabled || s.period == 0 {
		return
	}
	freq := s.calc()
	if freq > 2047 {
		ch.enabled = false
		return
	}
	if s.shift != 0 {
		s.shadow = freq
		ch.freq = freq
		if s.calc() > 2047 {
			ch.enabled = false
		}
	}
}

func (ch *channelSquare) getAmplitude() float32 {
	if !ch.enabled {
		return 0
	}
	return ch.env.getAmplitude(dutyTable[ch.duty][ch.dutyPos])
}

type channelWave struct {
	enabled, dacEnabled bool
	outputLevel, freq   int
	length              length
	wave                [16]uint8

	wavePos, timer int
}

func (ch *channelWave) setDAC(val uint8) {
	ch.dacEnabled = val&0x80 != 0
	if !ch.dacEnabled {
		ch.enabled = false
	}
}

func (ch *channelWave) setOutputLevel(val uint8) {
	ch.outputLevel = int(val>>5) & 3
}

func (ch *channelWave) setFreqLow(val uint8) {
	ch.freq = (ch.freq &^ 0xff) | int(val)
}

func (ch *channelWave) setFreqHigh(val uint8) {
	ch.freq = (ch.freq & 0xff) | (int(val&7) << 8)
	ch.length.enabled = (val>>6)&1 != 0
}

func (ch *channelWave) trigger() {
	ch.enabled = ch.dacEnabled
	ch.length.trigger()
	ch.timer = (2048 - ch.freq) * 2
	ch.wavePos = 0
}

func (ch *channelWave) tick() {
	ch.timer--
	if ch.timer <= 0 {
		ch.timer = (2048 - ch.freq) * 2
		ch.wavePos = (ch.wavePos + 1) % 32
	}
}

func (ch *channelWave) stepLength() {
	if ch.length.step() {
		ch.enabled = false
	}
}

func (ch *channelWave) getAmplitude() float32 {
	if !ch.enabled {
		return 0
	}

	val := ch.wave[ch.wavePos/2]
	if ch.wavePos%2 == 0 {
		val >>= 4
	} else {
		val &= 0x0f
	}

	// output level
	switch ch.outputLevel {
	case 0:
		val = 0
	case 1:
		// Do nothing
	case 2:
		val >>= 1
	case 3:
		val >>= 2
	}
	return float32(val)/7.5 - 1.0
}

var noiseDivisors = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

type channelNoise struct {
	enabled, dacEnabled bool
	shiftAmount         int
	divisorCode         int
	widthMode           bool
	length              length
	env                 envelope

	lfsr, timer int
}

func (ch *channelNoise) setEnvelope(val uint8) {
	ch.env.set(val)
	ch.dacEnabled = val&0xf8 != 0
	if !ch.dacEnabled {
		ch.enabled = false
	}
}

func (ch *channelNoise) setPolynomialCounter(val uint8) {
	ch.shiftAmount = int(val >> 4)
	ch.widthMode = ((val >> 3) & 1) != 0
	ch.divisorCode = int(val & 7)
}

func (ch *channelNoise) period() int {
	return noiseDivisors[ch.divisorCode] << ch.shiftAmount
}

func (ch *channelNoise) trigger() {
	ch.enabled = ch.dacEnabled
	ch.length.trigger()
	ch.lfsr = 0x7fff
	ch.timer = ch.period()
	ch.env.trigger()
}

func (ch *channelNoise) tick() {
	ch.timer--
	if ch.timer > 0 {
		return
	}
	ch.timer = ch.period()
	tmp := (ch.lfsr & 1) ^ ((ch.lfsr >> 1) & 1)
	ch.lfsr = (ch.lfsr >> 1) | (tmp << 14)
	if ch.widthMode {
		ch.lfsr &^= (1 << 6)
		ch.lfsr |= (tmp << 6)
	}
}

func (ch *channelNoise) stepLength() {
	if ch.length.step() {
		ch.enabled = false
	}
}

func (ch *channelNoise) getAmplitude() float32 {
	if !ch.enabled {
		return 0
	}
	val := float32(1&^ch.lfsr)*2 - 1
	return ch.env.getAmplitude(val)
}
