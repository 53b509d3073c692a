package speaker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const sysClock = 125_000_000

type recordingLine struct {
	levels []uint32
}

func (l *recordingLine) Set(level uint32) {
	l.levels = append(l.levels, level)
}

type countingSleeper struct {
	calls int
	total time.Duration
}

func (s *countingSleeper) Sleep(d time.Duration) {
	s.calls++
	s.total += d
}

func TestWrap(t *testing.T) {
	assert.Equal(t, uint32(2603), Wrap(sysClock, 48000))
	assert.Equal(t, uint32(1), Wrap(48000, 48000))
	assert.Equal(t, uint32(1), Wrap(1000, 48000))
	assert.Equal(t, uint32(1), Wrap(sysClock, 0))
}

func TestLevel(t *testing.T) {
	top := Wrap(sysClock, 48000)

	assert.Equal(t, uint32(0), Level(0, 1.7, top))
	assert.Equal(t, uint32(1080), Level(1000, 1.7, top))
	// 3000*1.7 = 5100 saturates to full scale
	assert.Equal(t, top, Level(3000, 1.7, top))
	assert.Equal(t, top, Level(4095, 1.7, top))
	assert.Equal(t, top, Level(0xffff, 1.7, top))
}

func TestLevelSaturatesInsteadOfWrapping(t *testing.T) {
	top := uint32(4095)
	for s := uint16(2409); s < 4096; s++ {
		assert.Equal(t, top, Level(s, 1.7, top), "sample %d", s)
	}
}

func TestPlayDrivesBothLinesThenSilences(t *testing.T) {
	a, b := &recordingLine{}, &recordingLine{}
	sl := &countingSleeper{}
	p := New(a, b, sysClock, 1.7)
	p.SetSleeper(sl)

	p.Play([]uint16{0, 1000, 3000}, 48000)

	assert.Equal(t, []uint32{0, 1080, 2603, 0}, a.levels)
	assert.Equal(t, a.levels, b.levels)
	assert.Equal(t, 3, sl.calls)
	assert.Equal(t, 62500*time.Nanosecond, sl.total)
}

func TestPlayPacesEverySample(t *testing.T) {
	sl := new(MockSleeper)
	sl.On("Sleep", 20*time.Microsecond).Return().Times(4)

	p := New(&recordingLine{}, &recordingLine{}, sysClock, 1.7)
	p.SetSleeper(sl)
	p.Play([]uint16{1, 2, 3, 4}, 50000)

	sl.AssertExpectations(t)
}

func TestPlaySpreadsFractionalPeriod(t *testing.T) {
	// 1e9/48000 = 20833.33ns
	sl := new(MockSleeper)
	sl.On("Sleep", 20833*time.Nanosecond).Return().Times(2)
	sl.On("Sleep", 20834*time.Nanosecond).Return().Once()

	p := New(&recordingLine{}, &recordingLine{}, sysClock, 1.7)
	p.SetSleeper(sl)
	p.Play([]uint16{1, 2, 3}, 48000)

	sl.AssertExpectations(t)
}

func TestSampleTime(t *testing.T) {
	assert.Equal(t, time.Duration(0), SampleTime(0, 48000))
	assert.Equal(t, 20833*time.Nanosecond, SampleTime(1, 48000))
	assert.Equal(t, 2*time.Second, SampleTime(96000, 48000))
}

func TestPlayTwoSecondsAt48k(t *testing.T) {
	a, b := &recordingLine{}, &recordingLine{}
	sl := &countingSleeper{}
	p := New(a, b, sysClock, 1.7)
	p.SetSleeper(sl)

	samples := make([]uint16, 96000)
	for i := range samples {
		samples[i] = 2048
	}
	p.Play(samples, 48000)

	assert.Equal(t, 96000, sl.calls)
	assert.Equal(t, 2*time.Second, sl.total)
	assert.Len(t, a.levels, 96001)
	assert.Equal(t, uint32(0), a.levels[96000])
	assert.Equal(t, uint32(0), b.levels[96000])
}

func TestPlayEmptyStillSilences(t *testing.T) {
	a, b := &recordingLine{}, &recordingLine{}
	sl := new(MockSleeper)
	p := New(a, b, sysClock, 1.7)
	p.SetSleeper(sl)

	p.Play(nil, 48000)
	p.Play([]uint16{4095}, 0)

	assert.Equal(t, []uint32{0, 0}, a.levels)
	assert.Equal(t, []uint32{0, 0}, b.levels)
	sl.AssertNotCalled(t, "Sleep", mock.Anything)
}
