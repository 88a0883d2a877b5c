package state

import (
	"slices"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/statedeck/internal/ports"
	sderrors "github.com/alexisbeaulieu97/statedeck/pkg/errors"
)

// NotificationType classifies a notification for display.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
)

// NotificationTypes lists the known types in display priority order.
var NotificationTypes = []NotificationType{
	NotificationSuccess,
	NotificationInfo,
	NotificationWarning,
	NotificationError,
}

// Valid reports whether t is one of the known types. Add does not enforce it.
func (t NotificationType) Valid() bool {
	return slices.Contains(NotificationTypes, t)
}

// Notification is a single toast message. ID is unique within the list.
type Notification struct {
	ID      int64            `json:"id" yaml:"id"`
	Message string           `json:"message" yaml:"message"`
	Type    NotificationType `json:"type" yaml:"type"`
}

// NotificationView is the read-only view of the notification slice.
type NotificationView interface {
	Snapshot() []Notification
	Subscribe(fn func([]Notification)) (unsubscribe func())
}

// NotificationOps is the operation set of the notification slice.
type NotificationOps interface {
	Add(message string, kind NotificationType)
	Remove(id int64)
}

type notificationSlice struct {
	list  *Observable[[]Notification]
	clock func() time.Time
	obs   *observer

	idMu   sync.Mutex
	lastID int64
}

func newNotificationSlice(clock func() time.Time, obs *observer) *notificationSlice {
	return &notificationSlice{
		list:  NewObservableWithEquality([]Notification{}, sameList),
		clock: clock,
		obs:   obs,
	}
}

func (s *notificationSlice) Snapshot() []Notification {
	return slices.Clone(s.list.Value())
}

func (s *notificationSlice) Subscribe(fn func([]Notification)) func() {
	if fn == nil {
		return func() {}
	}
	return s.list.AddListener(func(list []Notification) {
		fn(slices.Clone(list))
	})
}

// Add appends a notification with a fresh ID. The message is not validated.
func (s *notificationSlice) Add(message string, kind NotificationType) {
	n := Notification{ID: s.nextID(), Message: message, Type: kind}

	var count int
	s.list.Update(func(current []Notification) []Notification {
		next := append(slices.Clone(current), n)
		count = len(next)
		return next
	})
	s.obs.emit(sliceNotifications, "add", ports.EventNotificationAdded, map[string]any{
		"id":    n.ID,
		"type":  string(n.Type),
		"count": count,
	})
}

// Remove deletes the entry with the given ID. An unknown ID is a no-op and
// does not republish the list.
func (s *notificationSlice) Remove(id int64) {
	removed := false
	var count int
	s.list.Update(func(current []Notification) []Notification {
		idx := slices.IndexFunc(current, func(n Notification) bool { return n.ID == id })
		if idx < 0 {
			return current
		}
		removed = true
		next := slices.Delete(slices.Clone(current), idx, idx+1)
		count = len(next)
		return next
	})
	if !removed {
		return
	}
	s.obs.emit(sliceNotifications, "remove", ports.EventNotificationRemoved, map[string]any{
		"id":    id,
		"count": count,
	})
}

// Insert appends an existing notification, keeping its ID. It is used to
// restore a dismissed toast and fails when the ID is already present.
func (s *notificationSlice) Insert(n Notification) error {
	var dup bool
	var count int
	s.list.Update(func(current []Notification) []Notification {
		if slices.ContainsFunc(current, func(existing Notification) bool { return existing.ID == n.ID }) {
			dup = true
			return current
		}
		next := append(slices.Clone(current), n)
		count = len(next)
		return next
	})
	if dup {
		return sderrors.NewStateInvariantError(sliceNotifications, "duplicate notification id", map[string]any{
			"id": n.ID,
		})
	}

	s.idMu.Lock()
	if n.ID > s.lastID {
		s.lastID = n.ID
	}
	s.idMu.Unlock()

	s.obs.emit(sliceNotifications, "insert", ports.EventNotificationAdded, map[string]any{
		"id":    n.ID,
		"type":  string(n.Type),
		"count": count,
	})
	return nil
}

// sameList reports whether a and b are the same published list, so no-op
// updates that hand back the current slice are not republished.
func sameList(a, b []Notification) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// nextID derives the ID from the clock in milliseconds, bumped past the last
// issued ID so rapid calls stay unique and increasing.
func (s *notificationSlice) nextID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := s.clock().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
