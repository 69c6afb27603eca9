package flow

import (
	"fmt"

	"github.com/google/uuid"
)

// EventKind identifies a lifecycle event
type EventKind int

const (
	// Started is emitted once when tasks are about to be dispatched
	Started EventKind = iota
	// TaskDone is emitted when a task calls back for the first time. Under
	// FailFast it is not emitted for tasks finishing after the call settled.
	TaskDone
	// Settled is emitted right before the final callback is called
	Settled
)

func (k EventKind) String() string {
	switch k {
	case Started:
		return "Started"
	case TaskDone:
		return "TaskDone"
	case Settled:
		return "Settled"
	default:
		return fmt.Sprintf("invalid EventKind: %d", k)
	}
}

// Event describes one step in the life of an orchestration call.
//
// Index is the task position for TaskDone and -1 otherwise. Err is the task
// error for TaskDone and the reported error for Settled.
type Event struct {
	Run   uuid.UUID
	Op    string
	Kind  EventKind
	Index int
	Err   error
}

// Observer receives events. It may be called from several goroutines at once
// and must not block.
type Observer func(Event)

// run identifies one orchestration call for its observer
type run struct {
	id       uuid.UUID
	op       string
	observer Observer
}

func newRun(op string, cfg config) run {
	r := run{op: op, observer: cfg.observer}
	if r.observer != nil {
		r.id = uuid.New()
	}
	return r
}

func (r run) emit(kind EventKind, index int, err error) {
	if r.observer == nil {
		return
	}
	r.observer(Event{Run: r.id, Op: r.op, Kind: kind, Index: index, Err: err})
}
