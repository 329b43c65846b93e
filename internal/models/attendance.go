package models

import "time"

// AttendanceRecord maps a student to their current attendance percentage.
// The table is maintained by the academic system; this service only reads it
// as advisory input for approvers.
type AttendanceRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RollNo     string    `gorm:"size:20;uniqueIndex;not null" json:"roll_no"`
	Percentage float64   `gorm:"not null" json:"percentage"`
	UpdatedAt  time.Time `json:"updated_at"`
}
