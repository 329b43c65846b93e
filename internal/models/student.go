package models

import "time"

// Student is a campus resident who can raise leave requests. Mentor and HOD
// hold the usernames of the two faculty members the student may address a
// request to.
type Student struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RollNo       string    `gorm:"size:20;uniqueIndex;not null" json:"roll_no"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Branch       string    `gorm:"size:64" json:"branch"`
	Year         string    `gorm:"size:8;index" json:"year"`
	Section      string    `gorm:"size:8" json:"section"`
	Mentor       string    `gorm:"size:64" json:"mentor"`
	HOD          string    `gorm:"size:64" json:"hod"`
	Phone        string    `gorm:"size:20" json:"phone"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
