package models

import "time"

type NotificationType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

// Notification.RelatedID is read through TypeID: see domain/notification.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title   string `gorm:"size:255;not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"not null;default:false" json:"isRead"`

	TypeID    uint             `gorm:"not null" json:"typeId"`
	Type      NotificationType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	RelatedID *uint            `json:"relatedId"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
