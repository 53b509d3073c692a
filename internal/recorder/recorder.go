// Package recorder is the control loop: wait for the record button, capture and show a clip,
// wait for the play button, play it back, repeat.
package recorder

import (
	"fmt"
	"io"
	"time"

	"github.com/picorec/firmware/internal/config"
	"github.com/picorec/firmware/internal/filter"
	"github.com/picorec/firmware/internal/indicator"
)

type State uint8

const (
	Idle State = iota
	AwaitingPlayback
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingPlayback:
		return "awaiting playback"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

type Capturer interface {
	Record(buf []uint16, rate uint32, d time.Duration) int
}

type Smoother interface {
	Apply(samples []uint16)
}

type Player interface {
	Play(samples []uint16, rate uint32)
}

type Renderer interface {
	Draw(samples []uint16) error
	Clear() error
}

// Flag is a pending button event, set from interrupt context.
type Flag interface {
	Take() bool
	Clear()
}

// Parts are the collaborators a Recorder drives. Buffer is optional; when empty a buffer of
// config.Capacity samples is allocated.
type Parts struct {
	Mic     Capturer
	Filter  Smoother
	Speaker Player
	Screen  Renderer
	LED     indicator.Indicator
	Record  Flag
	Play    Flag
	Buffer  []uint16
	Log     io.Writer
	Sleep   func(time.Duration)
}

// Recorder owns the sample buffer and the recorded length. Only the main loop touches them.
type Recorder struct {
	cfg config.Config
	p   Parts

	state    State
	recorded int
}

func New(cfg config.Config, p Parts) (*Recorder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("recorder config: %w", err)
	}
	if len(p.Buffer) == 0 {
		p.Buffer = make([]uint16, cfg.Capacity())
	}
	if p.Log == nil {
		p.Log = io.Discard
	}
	if p.Sleep == nil {
		p.Sleep = time.Sleep
	}
	return &Recorder{cfg: cfg, p: p}, nil
}

func (r *Recorder) State() State {
	return r.state
}

// Samples is the last recording. Empty until the first capture.
func (r *Recorder) Samples() []uint16 {
	return r.p.Buffer[:r.recorded]
}

// Run polls forever.
func (r *Recorder) Run() {
	fmt.Fprintf(r.p.Log, "recorder ready: %d Hz, %v, buffer %d samples\n",
		r.cfg.SampleRate, r.cfg.Duration, len(r.p.Buffer))
	for {
		r.Step()
		r.p.Sleep(r.cfg.Poll)
	}
}

// Step handles at most one pending event for the current state.
func (r *Recorder) Step() {
	switch r.state {
	case Idle:
		if r.p.Record.Take() {
			r.record()
		}
	case AwaitingPlayback:
		if r.p.Play.Take() {
			r.play()
		}
	}
}

func (r *Recorder) record() {
	indicator.Recording(r.p.LED)
	fmt.Fprintf(r.p.Log, "recording...\n")
	r.recorded = r.p.Mic.Record(r.p.Buffer, r.cfg.SampleRate, r.cfg.Duration)
	r.p.Filter.Apply(r.p.Buffer[:r.recorded])
	indicator.Off(r.p.LED)

	s := filter.Measure(r.Samples())
	fmt.Fprintf(r.p.Log, "recorded %d samples: min %d max %d mean %d\n", r.recorded, s.Min, s.Max, int(s.Mean))

	if err := r.p.Screen.Draw(r.Samples()); err != nil {
		fmt.Fprintf(r.p.Log, "draw waveform: %v\n", err)
	}

	// a play press that arrived before there was anything to play is stale
	r.p.Play.Clear()
	r.state = AwaitingPlayback
	fmt.Fprintf(r.p.Log, "ready to play\n")
}

func (r *Recorder) play() {
	indicator.Playing(r.p.LED)
	fmt.Fprintf(r.p.Log, "playing...\n")
	r.p.Speaker.Play(r.Samples(), r.cfg.SampleRate)
	indicator.Off(r.p.LED)
	fmt.Fprintf(r.p.Log, "playback done\n")

	if err := r.p.Screen.Clear(); err != nil {
		fmt.Fprintf(r.p.Log, "clear screen: %v\n", err)
	}

	// record presses made during playback must not start a new recording right away
	r.p.Record.Clear()
	r.state = Idle
}
