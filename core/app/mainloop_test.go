package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/ftl/bandkeeper/core"
)

func TestStopAndDone(t *testing.T) {
	m := newMainLoop(nil, &mockVFO{}, 10*time.Millisecond)

	stop := make(chan struct{})
	start := time.Now()
	go func() {
		time.Sleep(100 * time.Millisecond)
		close(stop)
	}()
	m.Run(stop)
	duration := time.Since(start)

	assert.True(t, duration >= 100*time.Millisecond)
	assert.False(t, m.do(func() {}))
}

func TestDoRunsInLoop(t *testing.T) {
	m := newMainLoop(nil, &mockVFO{}, 10*time.Millisecond)
	stop := make(chan struct{})
	go m.Run(stop)
	defer close(stop)

	executed := false
	assert.True(t, m.do(func() { executed = true }))
	assert.True(t, executed)
}

func TestPollRig(t *testing.T) {
	rig := &mockRig{frequency: 7074000}
	vfo := &mockVFO{}
	m := newMainLoop(rig, vfo, 5*time.Millisecond)
	stop := make(chan struct{})
	go m.Run(stop)

	assert.Eventually(t, func() bool {
		return vfo.last() == 7074000
	}, time.Second, 5*time.Millisecond)

	rig.setError(errors.New("timeout"))
	close(stop)
	<-m.stopped
}

type mockRig struct {
	lock      sync.Mutex
	frequency core.Frequency
	err       error
}

func (m *mockRig) Frequency(ctx context.Context) (core.Frequency, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.frequency, m.err
}

func (m *mockRig) setError(err error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.err = err
}

type mockVFO struct {
	lock      sync.Mutex
	frequency core.Frequency
}

func (m *mockVFO) FollowRig(f core.Frequency) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	changed := m.frequency != f
	m.frequency = f
	return changed
}

func (m *mockVFO) last() core.Frequency {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.frequency
}
