package apu

import (
	"github.com/ushitora-anqou/mcboy/bus"
	"github.com/ushitora-anqou/mcboy/clock"
	"github.com/ushitora-anqou/mcboy/constant"
	"github.com/ushitora-anqou/mcboy/util"
)

const (
	AddrNR10 uint16 = 0xff10
	AddrNR52 uint16 = 0xff26
	AddrWave uint16 = 0xff30

	sequencerPeriod = constant.CPU_FREQ / 512
)

// Bits that always read as 1, indexed from 0xff10. Offsets marked unused
// answer with a region error.
var readMasks = [0x17]uint8{
	// NR10-NR14
	0x80, 0x3f, 0x00, 0xff, 0xbf,
	// unused, NR21-NR24
	0xff, 0x3f, 0x00, 0xff, 0xbf,
	// NR30-NR34
	0x7f, 0xff, 0x9f, 0xff, 0xbf,
	// unused, NR41-NR44
	0xff, 0xff, 0x00, 0x00, 0xbf,
	// NR50-NR52
	0x00, 0x00, 0x70,
}

func unusedRegister(addr uint16) bool {
	return addr == 0xff15 || addr == 0xff1f
}

// Sink receives interleaved stereo buffers. The buffer is reused after the
// call returns.
type Sink interface {
	EnqueueAudioBuffer(buf []float32) error
}

type APU struct {
	enabled                                        bool
	so1OutputLevel, so2OutputLevel, outputTerminal int
	ch1, ch2                                       channelSquare
	ch3                                            channelWave
	ch4                                            channelNoise
	regs                                           [0x17]uint8

	sequencer     *util.TickCounter
	sequencerStep int
	tickSample    *util.RateConverter
	buffer        []float32
	bufferIndex   int
	sink          Sink
}

func NewAPU(sink Sink) *APU {
	return &APU{
		ch1:        newChannelSquare(true),
		ch2:        newChannelSquare(false),
		ch3:        channelWave{length: length{max: 256}},
		ch4:        channelNoise{length: length{max: 64}},
		sequencer:  util.NewTickCounter(sequencerPeriod),
		tickSample: util.NewRateConverter(constant.CPU_FREQ, constant.AUDIO_FREQ),
		buffer:     make([]float32, constant.AUDIO_SAMPLES*constant.CHANNELS),
		sink:       sink,
	}
}

// PostBoot loads the register values the boot ROM leaves behind.
func (apu *APU) PostBoot() {
	apu.write(AddrNR52, 0xf1)
	apu.write(0xff24, 0x77)
	apu.write(0xff25, 0xf3)
}

func (apu *APU) status() uint8 {
	v := util.BoolToU8(apu.enabled) << 7
	v |= util.BoolToU8(apu.ch1.enabled)
	v |= util.BoolToU8(apu.ch2.enabled) << 1
	v |= util.BoolToU8(apu.ch3.enabled) << 2
	v |= util.BoolToU8(apu.ch4.enabled) << 3
	return v
}

func (apu *APU) Read(addr bus.Address) (uint8, error) {
	a := addr.Absolute
	switch {
	case AddrWave <= a && a <= 0xff3f:
		return apu.ch3.wave[a-AddrWave], nil
	case a == AddrNR52:
		return readMasks[a-AddrNR10] | apu.status(), nil
	case AddrNR10 <= a && a < AddrNR52 && !unusedRegister(a):
		return readMasks[a-AddrNR10] | apu.regs[a-AddrNR10], nil
	}
	return bus.OpenBus, bus.Unmapped(addr)
}

func (apu *APU) Write(v uint8, addr bus.Address) error {
	a := addr.Absolute
	switch {
	case AddrWave <= a && a <= 0xff3f:
		apu.ch3.wave[a-AddrWave] = v
		return nil
	case AddrNR10 <= a && a <= AddrNR52 && !unusedRegister(a):
		apu.write(a, v)
		return nil
	}
	return bus.Unmapped(addr)
}

func (apu *APU) write(addr uint16, val uint8) {
	if addr == AddrNR52 {
		util.Trace("\t<<<WRITE: NR52 Sound on/off: %08b>>>", val)
		apu.setPower(val>>7 != 0)
		return
	}
	if !apu.enabled {
		return
	}
	apu.regs[addr-AddrNR10] = val

	switch addr {
	// Channel 1
	case 0xff10: // NR10
		util.Trace("\t<<<WRITE: NR10 Channel 1 Sweep register: %08b>>>", val)
		apu.ch1.sweep.set(val)
	case 0xff11: // NR11
		util.Trace("\t<<<WRITE: NR11 Channel 1 Sound length/Wave pattern duty: %08b>>>", val)
		apu.ch1.setLengthAndWavePatternDuty(val)
	case 0xff12: // NR12
		util.Trace("\t<<<WRITE: NR12 Channel 1 Volume Envelope: %08b>>>", val)
		apu.ch1.setEnvelope(val)
	case 0xff13: // NR13
		apu.ch1.setFreqLow(val)
	case 0xff14: // NR14
		util.Trace("\t<<<WRITE: NR14 Channel 1 Frequency hi: %08b>>>", val)
		apu.ch1.setFreqHigh(val)
		if ((val >> 7) & 1) != 0 {
			apu.ch1.trigger()
		}

	// Channel 2
	case 0xff16: // NR21
		util.Trace("\t<<<WRITE: NR21 Channel 2 Sound Length/Wave Pattern Duty: %08b>>>", val)
		apu.ch2.setLengthAndWavePatternDuty(val)
	case 0xff17: // NR22
		util.Trace("\t<<<WRITE: NR22 Channel 2 Volume Envelope: %08b>>>", val)
		apu.ch2.setEnvelope(val)
	case 0xff18: // NR23
		apu.ch2.setFreqLow(val)
	case 0xff19: // NR24
		util.Trace("\t<<<WRITE: NR24 Channel 2 Frequency hi data: %08b>>>", val)
		apu.ch2.setFreqHigh(val)
		if ((val >> 7) & 1) != 0 {
			apu.ch2.trigger()
		}

	// Channel 3
	case 0xff1a: // NR30
		util.Trace("\t<<<WRITE: NR30 Channel 3 Sound on/off: %08b>>>", val)
		apu.ch3.setDAC(val)
	case 0xff1b: // NR31
		apu.ch3.length.load(int(val))
	case 0xff1c: // NR32
		util.Trace("\t<<<WRITE: NR32 Channel 3 Select output level: %08b>>>", val)
		apu.ch3.setOutputLevel(val)
	case 0xff1d: // NR33
		apu.ch3.setFreqLow(val)
	case 0xff1e: // NR34
		util.Trace("\t<<<WRITE: NR34 Channel 3 Frequency's higher data: %08b>>>", val)
		apu.ch3.setFreqHigh(val)
		if ((val >> 7) & 1) != 0 {
			apu.ch3.trigger()
		}

	// Channel 4
	case 0xff20: // NR41
		apu.ch4.length.load(int(val & 0x3f))
	case 0xff21: // NR42
		util.Trace("\t<<<WRITE: NR42 Channel 4 Volume Envelope: %08b>>>", val)
		apu.ch4.setEnvelope(val)
	case 0xff22: // NR43
		util.Trace("\t<<<WRITE: NR43 Channel 4 Polynomial Counter: %08b>>>", val)
		apu.ch4.setPolynomialCounter(val)
	case 0xff23: // NR44
		util.Trace("\t<<<WRITE: NR44 Channel 4 Counter/consecutive; Initial: %08b>>>", val)
		apu.ch4.length.enabled = ((val >> 6) & 1) != 0
		if ((val >> 7) & 1) != 0 {
			apu.ch4.trigger()
		}

	// Global registers
	case 0xff24: // NR50
		util.Trace("\t<<<WRITE: NR50 Channel control / On-OFF / Volume: %08b>>>", val)
		apu.so1OutputLevel = int(val & 7)
		apu.so2OutputLevel = int(val>>4) & 7
	case 0xff25: // NR51
		util.Trace("\t<<<WRITE: NR51 Selection of Sound output terminal: %08b>>>", val)
		apu.outputTerminal = int(val)
	}
}

// setPower clears every register when the unit is switched off. Wave RAM
// survives.
func (apu *APU) setPower(on bool) {
	if on == apu.enabled {
		return
	}
	apu.enabled = on
	if on {
		apu.sequencer.Reset()
		apu.sequencerStep = 0
		return
	}
	wave := apu.ch3.wave
	apu.ch1 = newChannelSquare(true)
	apu.ch2 = newChannelSquare(false)
	apu.ch3 = channelWave{length: length{max: 256}, wave: wave}
	apu.ch4 = channelNoise{length: length{max: 64}}
	apu.regs = [0x17]uint8{}
	apu.so1OutputLevel, apu.so2OutputLevel, apu.outputTerminal = 0, 0, 0
}

func (apu *APU) CycleCount() clock.Tick {
	return clock.TCycle
}

func (apu *APU) Tick(b bus.Bus) {
	if apu.enabled {
		apu.ch1.tick()
		apu.ch2.tick()
		apu.ch3.tick()
		apu.ch4.tick()
		if apu.sequencer.Tick(1) {
			apu.stepSequencer()
		}
	}

	if apu.tickSample.Tick() {
		apu.sample()
	}
}

// stepSequencer runs at 512 Hz: length on even steps, sweep on 2 and 6,
// envelopes on 7.
func (apu *APU) stepSequencer() {
	step := apu.sequencerStep
	apu.sequencerStep = (step + 1) % 8
	if step%2 == 0 {
		apu.ch1.stepLength()
		apu.ch2.stepLength()
		apu.ch3.stepLength()
		apu.ch4.stepLength()
	}
	if step == 2 || step == 6 {
		apu.ch1.stepSweep()
	}
	if step == 7 {
		apu.ch1.env.step()
		apu.ch2.env.step()
		apu.ch4.env.step()
	}
}

func (apu *APU) sample() {
	var left, right float32
	if apu.enabled {
		ch1 := apu.ch1.getAmplitude()
		ch2 := apu.ch2.getAmplitude()
		ch3 := apu.ch3.getAmplitude()
		ch4 := apu.ch4.getAmplitude()

		if (apu.outputTerminal>>0)&1 != 0 {
			right += ch1
		}
		if (apu.outputTerminal>>1)&1 != 0 {
			right += ch2
		}
		if (apu.outputTerminal>>2)&1 != 0 {
			right += ch3
		}
		if (apu.outputTerminal>>3)&1 != 0 {
			right += ch4
		}
		if (apu.outputTerminal>>4)&1 != 0 {
			left += ch1
		}
		if (apu.outputTerminal>>5)&1 != 0 {
			left += ch2
		}
		if (apu.outputTerminal>>6)&1 != 0 {
			left += ch3
		}
		if (apu.outputTerminal>>7)&1 != 0 {
			left += ch4
		}
		right = right * float32(apu.so1OutputLevel+1) / 8 / 4
		left = left * float32(apu.so2OutputLevel+1) / 8 / 4
	}

	apu.buffer[apu.bufferIndex] = left
	apu.buffer[apu.bufferIndex+1] = right
	apu.bufferIndex += 2
	if apu.bufferIndex < len(apu.buffer) {
		return
	}
	apu.bufferIndex = 0
	if apu.sink == nil {
		return
	}
	if err := apu.sink.EnqueueAudioBuffer(apu.buffer); err != nil {
		util.Trace("apu: enqueue audio buffer: %v", err)
	}
}
