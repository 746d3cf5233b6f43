package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/unistay/rental-platform/internal/core/domain"
	"github.com/unistay/rental-platform/internal/core/ports"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []ports.BookingEvent
	done   chan struct{}
	want   int
}

func newRecordingNotifier(want int) *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}), want: want}
}

func (n *recordingNotifier) Notify(ctx context.Context, event ports.BookingEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	if len(n.events) == n.want {
		close(n.done)
	}
	return nil
}

func (n *recordingNotifier) wait(t *testing.T) []ports.BookingEvent {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d events", n.want)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.BookingEvent(nil), n.events...)
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	notifier := newRecordingNotifier(1)
	d := NewDispatcher(2, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.BookingEvent{BookingID: "b1", Status: domain.StatusPending})

	events := notifier.wait(t)
	if events[0].BookingID != "b1" || events[0].Status != domain.StatusPending {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestDispatcher_PerBookingOrdering(t *testing.T) {
	const perBooking = 20
	notifier := newRecordingNotifier(2 * perBooking)
	d := NewDispatcher(4, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	statuses := []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed}
	for i := 0; i < perBooking; i++ {
		for _, id := range []string{"b1", "b2"} {
			d.Enqueue(ports.BookingEvent{BookingID: id, Status: statuses[i%2], OccurredAt: time.Unix(int64(i), 0)})
		}
	}

	events := notifier.wait(t)
	seen := map[string]int64{}
	for _, ev := range events {
		if ev.OccurredAt.Unix() < seen[ev.BookingID] {
			t.Fatalf("events for booking %s delivered out of order", ev.BookingID)
		}
		seen[ev.BookingID] = ev.OccurredAt.Unix()
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingNotifier(1), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_SameBookingSameShard(t *testing.T) {
	d := NewDispatcher(8, newRecordingNotifier(1), zerolog.Nop())
	if d.shardIndex("booking_42") != d.shardIndex("booking_42") {
		t.Fatal("shard index is not deterministic")
	}
}

func TestDispatcher_ShardIndexInRange(t *testing.T) {
	d := NewDispatcher(3, newRecordingNotifier(1), zerolog.Nop())
	// Several of these ids hash above math.MaxInt32 (fnv32a("") alone is
	// 2166136261); the index must still land in [0, workers).
	ids := []string{"", "a", "booking_42", "68b3f2aa9c1d4e0012345678", "zzzzzzzzzzzzzzzz"}
	for _, id := range ids {
		if idx := d.shardIndex(id); idx < 0 || idx >= len(d.workers) {
			t.Fatalf("shard index %d out of range for id %q", idx, id)
		}
	}
}
