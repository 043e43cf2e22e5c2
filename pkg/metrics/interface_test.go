package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProvider struct{ mock.Mock }

func (m *MockProvider) Count(name string, value float64, tags []string) error {
	return m.Called(name, value, tags).Error(0)
}

func (m *MockProvider) Gauge(name string, value float64, tags []string) error {
	return m.Called(name, value, tags).Error(0)
}

func (m *MockProvider) Histogram(name string, value float64, tags []string) error {
	return m.Called(name, value, tags).Error(0)
}

func TestRecorder_Observe(t *testing.T) {
	p := new(MockProvider)
	expectedTags := []string{"service:items-api", "operation:create", "outcome:success"}

	p.On("Count", RequestCount, 1.0, expectedTags).Return(nil)
	p.On("Histogram", RequestLatency, mock.AnythingOfType("float64"), expectedTags).Return(nil)

	r := NewRecorder(p, "service:items-api")
	r.Observe("create", OutcomeSuccess, time.Now())

	p.AssertExpectations(t)
}

func TestRecorder_IgnoresProviderErrors(t *testing.T) {
	p := new(MockProvider)
	p.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("udp closed"))
	p.On("Histogram", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("udp closed"))

	r := NewRecorder(p)
	assert.NotPanics(t, func() { r.Observe("list", OutcomeError, time.Now()) })
	p.AssertNumberOfCalls(t, "Count", 1)
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() { r.Observe("get", OutcomeNotFound, time.Now()) })
	assert.NotPanics(t, func() { NewRecorder(nil).Observe("get", OutcomeNotFound, time.Now()) })
}
