package speaker

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockSleeper mocks Sleeper
type MockSleeper struct {
	mock.Mock
}

func (m *MockSleeper) Sleep(d time.Duration) {
	m.Called(d)
}
