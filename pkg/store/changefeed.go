package store

import (
	"fmt"

	"orgboard/pkg/orgboard"
)

// subscriberBuffer bounds each subscription channel; slow consumers drop
// notifications rather than block mutations.
const subscriberBuffer = 16

// ChangeKind identifies which piece of container state changed.
type ChangeKind string

const (
	// ChangeKindBulletin signals a bulletin collection change.
	ChangeKindBulletin ChangeKind = "bulletin"
	// ChangeKindInquiries signals an inquiry collection change.
	ChangeKindInquiries ChangeKind = "inquiries"
	// ChangeKindSettings signals a site settings change.
	ChangeKindSettings ChangeKind = "settings"
	// ChangeKindMemberCompanies signals a member-company collection change.
	ChangeKindMemberCompanies ChangeKind = "member_companies"
	// ChangeKindAdmin signals an admin flag change.
	ChangeKindAdmin ChangeKind = "admin"
)

// Change is one state change notification.
type Change struct {
	Kind ChangeKind
}

// Subscribe registers one change listener and returns its channel plus a
// cancel function. The channel is closed on cancel and on container Close.
func (c *Container) Subscribe() (<-chan Change, func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, nil, fmt.Errorf("subscribe: %w", orgboard.ErrContainerClosed)
	}

	id := c.nextSubscriberID
	c.nextSubscriberID++
	changes := make(chan Change, subscriberBuffer)
	c.subscribers[id] = changes

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if subscriber, exists := c.subscribers[id]; exists {
			close(subscriber)
			delete(c.subscribers, id)
		}
	}

	return changes, cancel, nil
}

// notifyLocked fans one change out to all subscribers without blocking;
// full channels drop the notification.
func (c *Container) notifyLocked(kind ChangeKind) {
	for _, subscriber := range c.subscribers {
		select {
		case subscriber <- Change{Kind: kind}:
		default:
			c.logger.Warn("change notification dropped", "kind", string(kind))
		}
	}
}
