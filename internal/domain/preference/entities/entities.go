package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ChannelType is the medium a user receives summaries through
type ChannelType string

const (
	ChannelEmail    ChannelType = "email"
	ChannelWhatsApp ChannelType = "whatsapp"
)

func (t ChannelType) Valid() bool {
	return t == ChannelEmail || t == ChannelWhatsApp
}

// NotificationPreference is the single delivery preference of a user
type NotificationPreference struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID      string         `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	ChannelType ChannelType    `gorm:"column:notification_type;not null" json:"channel_type"`
	Destination string         `gorm:"column:notification_value;not null" json:"destination"`
	Categories  pq.StringArray `gorm:"column:categories;type:text[];not null" json:"categories"`
	Enabled     bool           `gorm:"column:enabled;not null;default:true" json:"enabled"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NotificationPreference) TableName() string {
	return "user_notification_preferences"
}
