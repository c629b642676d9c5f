package emulator

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestTransitionsRunInOrder(t *testing.T) {
	is := is.New(t)

	l := newLifecycle(0)
	is.NoErr(l.Start())

	order := []string{}
	for _, name := range []string{"first", "second", "third"} {
		l.Schedule(context.Background(), name, "r", func() bool {
			order = append(order, name)
			return true
		})
	}

	is.NoErr(l.Stop())
	is.Equal(order, []string{"first", "second", "third"})
}

func TestTransitionsAreDroppedWhenNotStarted(t *testing.T) {
	is := is.New(t)

	var ran atomic.Bool

	l := newLifecycle(0)
	l.Schedule(context.Background(), "never", "r", func() bool {
		ran.Store(true)
		return true
	})

	is.NoErr(l.Stop())
	is.True(!ran.Load())
}

func TestDelayedTransitionsAreDroppedOnStop(t *testing.T) {
	is := is.New(t)

	var ran atomic.Bool

	l := newLifecycle(time.Hour)
	is.NoErr(l.Start())

	l.Schedule(context.Background(), "later", "r", func() bool {
		ran.Store(true)
		return true
	})

	is.NoErr(l.Stop())
	is.True(!ran.Load())
}

func TestStartTwiceFails(t *testing.T) {
	is := is.New(t)

	l := newLifecycle(0)
	is.NoErr(l.Start())
	defer l.Stop()

	is.True(l.Start() != nil)
}

func TestRestartAfterStop(t *testing.T) {
	is := is.New(t)

	l := newLifecycle(0)
	is.NoErr(l.Start())
	is.NoErr(l.Stop())
	is.NoErr(l.Start())

	var ran atomic.Bool
	l.Schedule(context.Background(), "after-restart", "r", func() bool {
		ran.Store(true)
		return true
	})

	is.NoErr(l.Stop())
	is.True(ran.Load()) // transition scheduled after a restart should run
}
