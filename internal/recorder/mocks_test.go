package recorder

import (
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRenderer mocks Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Draw(samples []uint16) error {
	args := m.Called(samples)
	return args.Error(0)
}

func (m *MockRenderer) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// MockCapturer mocks Capturer
type MockCapturer struct {
	mock.Mock
}

func (m *MockCapturer) Record(buf []uint16, rate uint32, d time.Duration) int {
	args := m.Called(buf, rate, d)
	return args.Int(0)
}

// journal records every collaborator call in order.
type journal struct {
	calls []string

	fill      uint16
	onPlay    func()
	onCapture func()
}

func (j *journal) log(format string, args ...interface{}) {
	j.calls = append(j.calls, fmt.Sprintf(format, args...))
}

func (j *journal) Record(buf []uint16, rate uint32, d time.Duration) int {
	j.log("record %d %v", rate, d)
	if j.onCapture != nil {
		j.onCapture()
	}
	for i := range buf {
		buf[i] = j.fill
	}
	return len(buf)
}

func (j *journal) Apply(samples []uint16) { j.log("filter %d", len(samples)) }

func (j *journal) Play(samples []uint16, rate uint32) {
	j.log("play %d %d", len(samples), rate)
	if j.onPlay != nil {
		j.onPlay()
	}
}

func (j *journal) Draw(samples []uint16) error {
	j.log("draw %d", len(samples))
	return nil
}

func (j *journal) Clear() error {
	j.log("clear")
	return nil
}

func (j *journal) Set(red, green, blue bool) {
	j.log("led %t %t %t", red, green, blue)
}
