package app

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ftl/bandkeeper/core"
)

func newMainLoop(rig rigPoller, vfos vfoType, pollInterval time.Duration) *mainLoop {
	result := &mainLoop{
		rig:          rig,
		vfos:         vfos,
		pollInterval: pollInterval,
		command:      make(chan command, 1),
		stopped:      make(chan struct{}),
	}

	return result
}

type command func()

type mainLoop struct {
	rig          rigPoller
	vfos         vfoType
	pollInterval time.Duration
	command      chan command
	stopped      chan struct{}
}

type rigPoller interface {
	Frequency(ctx context.Context) (core.Frequency, error)
}

type vfoType interface {
	FollowRig(f core.Frequency) bool
}

func (m *mainLoop) Run(stop chan struct{}) {
	defer log.Debug("main loop shutdown")
	defer close(m.stopped)

	var poll <-chan time.Time
	if m.rig != nil {
		pollTick := time.NewTicker(m.pollInterval)
		defer pollTick.Stop()
		poll = pollTick.C
	}

	for {
		select {
		case <-poll:
			m.pollRig()
		case command := <-m.command:
			command()
		case <-stop:
			return
		}
	}
}

func (m *mainLoop) pollRig() {
	ctx, cancel := context.WithTimeout(context.Background(), m.pollInterval)
	defer cancel()

	f, err := m.rig.Frequency(ctx)
	if err != nil {
		log.WithError(err).Debug("polling rig frequency failed")
		return
	}
	if m.vfos.FollowRig(f) {
		log.Debugf("rig moved to %v", f)
	}
}

// do executes the given command in the main loop and waits until it is done. It reports false if
// the main loop is not running anymore.
func (m *mainLoop) do(cmd command) bool {
	done := make(chan struct{})
	select {
	case m.command <- func() {
		defer close(done)
		cmd()
	}:
	case <-m.stopped:
		log.Warn("main loop is not running")
		return false
	}

	select {
	case <-done:
		return true
	case <-m.stopped:
		return false
	}
}
