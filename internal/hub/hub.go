// Package hub fans messages out to the subscribers of a workspace.
// Delivery is best effort: a subscriber whose send fails is dropped
// from the registry so one dead connection cannot wedge the rest.
package hub

import (
	"context"
	"log/slog"
	"sync"
)

// SendFunc delivers one message to a single subscriber. A non-nil
// error marks the subscriber as dead.
type SendFunc func(msg []byte) error

// Subscription is the handle returned by Subscribe. Publish delivers
// to subscriptions in the order they were registered.
type Subscription struct {
	workspaceID int64
	send        SendFunc
}

// bucket holds one workspace's subscribers behind its own lock, so
// registration and publishing in one workspace never contend with
// another workspace's.
type bucket struct {
	mu   sync.Mutex
	subs []*Subscription

	// gone marks a bucket that was collected after its last subscriber
	// left. A Subscribe racing the collection must not land here.
	gone bool
}

// remove must be called with b.mu held.
func (b *bucket) remove(sub *Subscription) {
	for i, s := range b.subs {
		if s == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

type Hub struct {
	// mu guards the buckets map only, for bucket create, lookup, and
	// collection. Subscriber slices are guarded per bucket.
	mu      sync.RWMutex
	buckets map[int64]*bucket
}

func New() *Hub {
	return &Hub{buckets: make(map[int64]*bucket)}
}

func (h *Hub) lookup(workspaceID int64) *bucket {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.buckets[workspaceID]
}

func (h *Hub) Subscribe(workspaceID int64, send SendFunc) *Subscription {
	sub := &Subscription{workspaceID: workspaceID, send: send}
	for {
		b := h.lookup(workspaceID)
		if b == nil {
			h.mu.Lock()
			b = h.buckets[workspaceID]
			if b == nil {
				b = &bucket{}
				h.buckets[workspaceID] = b
			}
			h.mu.Unlock()
		}

		b.mu.Lock()
		if b.gone {
			// Lost the race against the last unsubscribe; start over
			// with a fresh bucket.
			b.mu.Unlock()
			continue
		}
		b.subs = append(b.subs, sub)
		b.mu.Unlock()
		return sub
	}
}

// Unsubscribe removes sub from its workspace bucket. Calling it for a
// subscription that was already dropped is a no-op. The bucket itself
// is collected when its last subscriber leaves.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b := h.lookup(sub.workspaceID)
	if b == nil {
		return
	}

	b.mu.Lock()
	b.remove(sub)
	if len(b.subs) == 0 && !b.gone {
		b.gone = true
		h.mu.Lock()
		if h.buckets[sub.workspaceID] == b {
			delete(h.buckets, sub.workspaceID)
		}
		h.mu.Unlock()
	}
	b.mu.Unlock()
}

// Publish delivers msg to every live subscriber of the workspace, in
// registration order. Subscribers whose send fails are removed. The
// bucket lock covers only the snapshot; sends happen outside it.
func (h *Hub) Publish(ctx context.Context, workspaceID int64, msg []byte) {
	b := h.lookup(workspaceID)
	if b == nil {
		return
	}

	b.mu.Lock()
	subs := make([]*Subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, sub := range subs {
		if err := sub.send(msg); err != nil {
			slog.DebugContext(ctx, "dropping subscriber after failed send",
				"error", err,
				"workspace_id", workspaceID,
			)
			h.Unsubscribe(sub)
		}
	}
}

// SubscriberCount reports the number of live subscribers for a
// workspace.
func (h *Hub) SubscriberCount(workspaceID int64) int {
	b := h.lookup(workspaceID)
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
