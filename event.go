package fsmx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// EventKind classifies a run event.
type EventKind int

const (
	RunStarted EventKind = iota
	Stepped
	Accepted
	Failed
)

func (k EventKind) String() string {
	switch k {
	case RunStarted:
		return "started"
	case Stepped:
		return "stepped"
	case Accepted:
		return "accepted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes one moment of a run. Events are values; observers must not retain
// pointers into them expecting updates.
//
// State is the state after the step for Stepped, the state the run stopped in for
// Accepted and Failed. Position is the 0-based index of Symbol, or the number of
// symbols consumed for Accepted and rejections.
type Event struct {
	Machine  string
	RunID    uuid.UUID
	Kind     EventKind
	State    any
	Symbol   any
	Position int
	Output   any
	Err      error
	Time     time.Time
}

// Observer receives run events synchronously on the goroutine executing the run.
// Implementations must be safe for concurrent use.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(e Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}

type trace struct {
	machine   string
	id        uuid.UUID
	observers []Observer
}

// trace returns nil when nothing observes the machine, so unobserved runs skip event work.
func (m *Machine[S, A, V]) trace() *trace {
	if len(m.observers) == 0 {
		return nil
	}
	return &trace{machine: m.name, id: uuid.New(), observers: m.observers}
}

func (t *trace) emit(e Event) {
	e.Machine = t.machine
	e.RunID = t.id
	e.Time = time.Now()
	for _, o := range t.observers {
		o.Observe(e)
	}
}

type logObserver struct {
	logger *slog.Logger
}

func (o *logObserver) Observe(e Event) {
	attrs := []slog.Attr{
		slog.String("machine", e.Machine),
		slog.String("run_id", e.RunID.String()),
		slog.Any("state", e.State),
		slog.Int("position", e.Position),
	}
	if e.Symbol != nil {
		attrs = append(attrs, slog.Any("symbol", e.Symbol))
	}
	if e.Output != nil {
		attrs = append(attrs, slog.Any("output", e.Output))
	}
	if e.Err != nil {
		attrs = append(attrs, slog.Any("error", e.Err))
	}
	o.logger.LogAttrs(context.Background(), slog.LevelDebug, "fsm run "+e.Kind.String(), attrs...)
}
