package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/playmatatu/billiards/internal/game"
)

const (
	FramesChannel = "billiards:frames"
	InputChannel  = "billiards:input"
	SnapshotKey   = "billiards:snapshot"
)

// Mirror copies snapshots to Redis so viewers in other processes can follow
// the table: each one is published on FramesChannel and the latest is kept
// under SnapshotKey.
type Mirror struct {
	rdb   *redis.Client
	ttl   time.Duration
	queue chan []byte
}

func NewMirror(rdb *redis.Client, ttl time.Duration) *Mirror {
	return &Mirror{
		rdb:   rdb,
		ttl:   ttl,
		queue: make(chan []byte, 8),
	}
}

// Publish queues a snapshot for the mirror worker. Frames are dropped while
// Redis is slower than the tick loop.
func (m *Mirror) Publish(snap game.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		logrus.Errorf("[REDIS] Error marshaling snapshot: %v", err)
		return
	}
	select {
	case m.queue <- data:
	default:
	}
}

// Start runs the mirror worker until ctx is cancelled.
func (m *Mirror) Start(ctx context.Context) {
	logrus.Infof("[REDIS] Snapshot mirror started (channel=%s key=%s)", FramesChannel, SnapshotKey)
	go func() {
		for {
			select {
			case <-ctx.Done():
				logrus.Info("[REDIS] Snapshot mirror stopping")
				return
			case data := <-m.queue:
				if err := m.rdb.Publish(ctx, FramesChannel, data).Err(); err != nil {
					logrus.Warnf("[REDIS] Publish failed: %v", err)
				}
				if err := m.rdb.SetEx(ctx, SnapshotKey, data, m.ttl).Err(); err != nil {
					logrus.Warnf("[REDIS] SetEx failed: %v", err)
				}
			}
		}
	}()
}

// DecodeInputPayload parses a key event published on InputChannel. Both the
// bare event and the viewer envelope are accepted.
func DecodeInputPayload(payload string) (game.KeyEvent, error) {
	if ev, err := DecodeKeyMessage([]byte(payload)); err == nil {
		return ev, nil
	}
	var ev game.KeyEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return game.KeyEvent{}, err
	}
	if !game.IsKnownKey(ev.Key) {
		return game.KeyEvent{}, errNotKeyMessage
	}
	return ev, nil
}

// StartInputSubscriber subscribes to InputChannel and forwards key events to
// sink until ctx is cancelled.
func StartInputSubscriber(ctx context.Context, rdb *redis.Client, sink InputSink) {
	if rdb == nil {
		logrus.Info("[REDIS] Redis client not set; input subscriber not started")
		return
	}

	pubsub := rdb.Subscribe(ctx, InputChannel)
	ch := pubsub.Channel()
	go func() {
		defer pubsub.Close()
		logrus.Infof("[REDIS] %s subscriber started", InputChannel)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				ev, err := DecodeInputPayload(msg.Payload)
				if err != nil {
					logrus.Warnf("[REDIS] invalid input payload %q: %v", msg.Payload, err)
					continue
				}
				sink.Submit(ev)
			}
		}
	}()
}
