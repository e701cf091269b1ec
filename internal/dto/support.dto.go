package dto

import "time"

type UserSummaryDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MessageDTO struct {
	ID        uint            `json:"id"`
	TicketID  uint            `json:"ticketId"`
	Message   string          `json:"message"`
	IsRead    bool            `json:"isRead"`
	CreatedAt time.Time       `json:"createdAt"`
	Sender    *UserSummaryDTO `json:"sender"`
}

type TicketDTO struct {
	ID          uint            `json:"id"`
	Subject     string          `json:"subject"`
	Status      LookupDTO       `json:"status"`
	User        *UserSummaryDTO `json:"user,omitempty"`
	UnreadCount int64           `json:"unreadCount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Messages    []MessageDTO    `json:"messages,omitempty"`
}
