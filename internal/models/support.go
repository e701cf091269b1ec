package models

import "time"

type TicketStatus struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

// SupportTicket may belong to a guest, in which case UserID is nil.
type SupportTicket struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `gorm:"index" json:"userId"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Subject string `gorm:"size:255;not null" json:"subject"`

	StatusID uint         `gorm:"not null;index" json:"statusId"`
	Status   TicketStatus `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"status"`

	Messages []SupportMessage `gorm:"foreignKey:TicketID" json:"messages,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SupportMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TicketID uint `gorm:"not null;index" json:"ticketId"`

	SenderID *uint `gorm:"index" json:"senderId"`
	Sender   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"not null;default:false" json:"isRead"`

	CreatedAt time.Time `json:"createdAt"`
}
