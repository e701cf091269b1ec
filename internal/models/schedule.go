package models

import "time"

// EmployeeSchedule rows are independent per day; overlaps are not checked.
type EmployeeSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID uint `gorm:"not null;index" json:"employeeId"`
	Employee   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date        time.Time `gorm:"not null;index" json:"date"`
	StartTime   string    `gorm:"size:5;not null" json:"startTime"`
	EndTime     string    `gorm:"size:5;not null" json:"endTime"`
	IsAvailable bool      `gorm:"not null" json:"isAvailable"`
}
