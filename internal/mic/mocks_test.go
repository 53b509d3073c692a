package mic

import (
	"github.com/stretchr/testify/mock"
)

// MockConverter mocks Converter
type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) SelectInput(input uint8) {
	m.Called(input)
}

func (m *MockConverter) SetClockDiv(div float32) {
	m.Called(div)
}

func (m *MockConverter) DrainFIFO() {
	m.Called()
}

func (m *MockConverter) Run(on bool) {
	m.Called(on)
}

func (m *MockConverter) ClockHz() uint32 {
	args := m.Called()
	return args.Get(0).(uint32)
}

// MockTransfer mocks Transfer
type MockTransfer struct {
	mock.Mock
}

func (m *MockTransfer) Start(dst []uint16) {
	m.Called(dst)
}

func (m *MockTransfer) Wait() {
	m.Called()
}
