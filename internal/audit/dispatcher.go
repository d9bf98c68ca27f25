package audit

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

type Event struct {
	GarageID string
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Dispatcher writes audit events on a background worker. A full queue
// drops the event; auditing never fails a request.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			log.WithFields(log.Fields{
				"action": ev.Action,
				"entity": ev.Entity,
			}).WithError(err).Error("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close drains the queue and waits for the worker. Dispatch must not be
// called afterwards.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}
