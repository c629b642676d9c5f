package emulator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("sagemaker-emulator/lifecycle")

// transition moves a resource to its next state. It reports false if the
// resource was no longer in the expected state.
type transition func() bool

type action func()

// lifecycle runs resource state transitions on a single worker goroutine, in
// the order they become due
type lifecycle struct {
	mu      sync.Mutex
	started bool
	delay   time.Duration

	queue chan action
}

func newLifecycle(delay time.Duration) *lifecycle {
	return &lifecycle{
		delay: delay,
	}
}

func (l *lifecycle) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started {
		return fmt.Errorf("already started")
	}

	l.started = true
	l.queue = make(chan action, 32)

	go l.run(l.queue)

	return nil
}

// Stop waits for all queued transitions to complete. Transitions that are not
// yet due are dropped.
func (l *lifecycle) Stop() error {
	l.mu.Lock()

	if !l.started {
		l.mu.Unlock()
		return nil
	}

	l.started = false

	queue := l.queue
	done := make(chan struct{})
	queue <- func() {
		close(queue)
		close(done)
	}

	l.mu.Unlock()

	<-done

	return nil
}

// Schedule runs t once the lifecycle delay has passed
func (l *lifecycle) Schedule(ctx context.Context, name, resource string, t transition) {
	logger := logging.GetFromContext(ctx)

	_, span := tracer.Start(context.Background(), name,
		trace.WithLinks(trace.LinkFromContext(ctx)),
		trace.WithAttributes(attribute.String("resource", resource)),
	)

	run := func() {
		var err error
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		if !t() {
			logger.Debug("skipped state transition", "transition", name, "resource", resource)
			return
		}

		logger.Info("resource changed state", "transition", name, "resource", resource)
	}

	if l.delay <= 0 {
		if !l.enqueue(run) {
			span.End()
		}
		return
	}

	time.AfterFunc(l.delay, func() {
		if !l.enqueue(run) {
			span.End()
		}
	})
}

func (l *lifecycle) enqueue(a action) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.started {
		return false
	}

	l.queue <- a
	return true
}

func (l *lifecycle) run(queue chan action) {
	// repeat until the queue is closed
	for action := range queue {
		action()
	}
}
