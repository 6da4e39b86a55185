package recorder

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/playmatatu/billiards/internal/game"
)

const writeTimeout = 5 * time.Second

// Recorder writes pause, resume and step events of one session to a Store
// from a background worker. It is an audit trail only; nothing is read back
// into the simulation.
type Recorder struct {
	store   Store
	session Session
	events  chan game.ControlEvent
	wg      sync.WaitGroup
	dropped int
	mu      sync.Mutex
}

// New prepares a session for the given table. Call Start before use.
func New(store Store, params game.SceneParams, tickRate int) (*Recorder, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal table params: %w", err)
	}
	return &Recorder{
		store: store,
		session: Session{
			ID:          uuid.New(),
			TableParams: raw,
			TickRate:    tickRate,
			StartedAt:   time.Now(),
		},
		events: make(chan game.ControlEvent, 64),
	}, nil
}

func (r *Recorder) SessionID() uuid.UUID {
	return r.session.ID
}

// Start creates the session row and starts the writer.
func (r *Recorder) Start(ctx context.Context) error {
	if err := r.store.CreateSession(ctx, r.session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	logrus.Infof("[DB] Recording control events for session %s", r.session.ID)

	r.wg.Add(1)
	go r.worker()
	return nil
}

// OnControl queues an event. Events are dropped if the writer falls behind.
func (r *Recorder) OnControl(ev game.ControlEvent) {
	select {
	case r.events <- ev:
	default:
		r.mu.Lock()
		r.dropped++
		r.mu.Unlock()
	}
}

func (r *Recorder) worker() {
	defer r.wg.Done()
	for ev := range r.events {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := r.store.InsertEvent(ctx, r.session.ID, ev); err != nil {
			logrus.Warnf("[DB] Failed to record %s for session %s: %v", ev.Kind, r.session.ID, err)
		}
		cancel()
	}
}

// Events returns the events stored so far for this session.
func (r *Recorder) Events(ctx context.Context) ([]EventRow, error) {
	return r.store.Events(ctx, r.session.ID)
}

// Dropped is the number of events lost to a full queue.
func (r *Recorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Close drains the queue and closes the session with the final frame count.
// OnControl must not be called after Close.
func (r *Recorder) Close(frames uint64) error {
	close(r.events)
	r.wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := r.store.EndSession(ctx, r.session.ID, frames); err != nil {
		return fmt.Errorf("failed to end session %s: %w", r.session.ID, err)
	}
	return nil
}
