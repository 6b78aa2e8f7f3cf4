package services

import (
	"sync"

	"github.com/navarrastar/leadpage/pkg/models"
)

// Notifier shows toast notifications to the visitor.
type Notifier interface {
	Notify(n models.Notification)
}

// NotificationRecorder collects notifications so a request handler can render
// them after the flow has run.
type NotificationRecorder struct {
	mu    sync.Mutex
	notes []models.Notification
}

func (r *NotificationRecorder) Notify(n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

// All returns the notifications in the order they were raised.
func (r *NotificationRecorder) All() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.notes...)
}

// Last returns the most recent notification, if any.
func (r *NotificationRecorder) Last() (models.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return models.Notification{}, false
	}
	return r.notes[len(r.notes)-1], true
}
