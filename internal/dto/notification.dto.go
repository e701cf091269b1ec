package dto

import "time"

type TargetDTO struct {
	Kind string `json:"kind"`
	ID   *uint  `json:"id,omitempty"`
}

type NotificationDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	TypeID    uint      `json:"typeId"`
	RelatedID *uint     `json:"relatedId"`
	Target    TargetDTO `json:"target"`
	CreatedAt time.Time `json:"createdAt"`
}
