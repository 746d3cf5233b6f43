package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/unistay/rental-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes booking lifecycle events to a fixed set of workers using
// consistent hashing on the booking id, guaranteeing per-booking ordering of
// notifications.
type Dispatcher struct {
	workers  []chan ports.BookingEvent
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.BookingEvent, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.BookingEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its booking id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.BookingEvent) {
	d.workers[d.shardIndex(event.BookingID)] <- event
}

// shardIndex maps a booking id deterministically to a worker index.
func (d *Dispatcher) shardIndex(bookingID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(bookingID))
	// Reduce before converting so the index stays valid on 32-bit ints.
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.BookingEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.notifier.Notify(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("booking_id", event.BookingID).
					Int("worker_id", id).
					Msg("notification failed")
			}
		}
	}
}
