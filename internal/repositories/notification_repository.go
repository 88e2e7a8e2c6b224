package repositories

import (
	"github.com/stride-social/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	GetByRecipient(recipient string) ([]models.Notification, error)
	GetUnreadCount(recipient string) (int64, error)
	MarkAsRead(notificationID uint) error
	MarkAllAsRead(recipient string) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a NotificationRepository backed
// by PostgreSQL
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *postgresNotificationRepository) GetByRecipient(recipient string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("to_user = ?", recipient).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *postgresNotificationRepository) GetUnreadCount(recipient string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("to_user = ? AND read = false", recipient).Count(&count).Error
	return count, err
}

func (r *postgresNotificationRepository) MarkAsRead(notificationID uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Update("read", true).Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipient string) error {
	return r.db.Model(&models.Notification{}).Where("to_user = ? AND read = false", recipient).Update("read", true).Error
}
