package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stride-social/backend/internal/metrics"
	"github.com/stride-social/backend/internal/models"
	"github.com/stride-social/backend/internal/repositories"
)

// Notifier constructs and persists notification records. Text is rendered by
// the caller, which holds the actor's profile; the emitter does no
// templating, dedup or batching.
type Notifier struct {
	notifications repositories.NotificationRepository
	metrics       metrics.Recorder
	log           logrus.FieldLogger
}

// NewNotifier creates a new Notifier
func NewNotifier(notifRepo repositories.NotificationRepository, rec metrics.Recorder, log logrus.FieldLogger) *Notifier {
	return &Notifier{
		notifications: notifRepo,
		metrics:       rec,
		log:           log,
	}
}

// Emit durably writes a notification addressed to the recipient. Records are
// created unread.
func (n *Notifier) Emit(to, actorID, category, icon, title, text, link string) error {
	notification := &models.Notification{
		To:             to,
		ActorID:        actorID,
		Icon:           icon,
		Title:          title,
		Text:           text,
		ActionableLink: link,
		DisplayDate:    time.Now(),
		Read:           false,
		Category:       category,
	}

	if err := n.notifications.CreateNotification(notification); err != nil {
		return err
	}

	n.metrics.RecordNotificationEmitted(category)
	n.log.WithFields(logrus.Fields{
		"to":       to,
		"actor_id": actorID,
		"category": category,
	}).Debug("notification emitted")
	return nil
}
