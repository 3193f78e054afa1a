package mocks

import "github.com/stretchr/testify/mock"

// MockDetector is a mock implementation of selectors.Detector.
type MockDetector struct {
	mock.Mock
}

// NewMockDetector creates a new instance of MockDetector
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// IsDocker mocks the IsDocker method
func (m *MockDetector) IsDocker() bool {
	args := m.Called()
	return args.Bool(0)
}
