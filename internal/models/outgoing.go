package models

import "time"

// OutgoingRecord is a ledger entry for a fully approved leave request,
// awaiting confirmation at the security checkpoint. Entries are written once
// when the admin office approves and deleted once when the student exits;
// they carry a copy of the request fields and no reference back to it.
type OutgoingRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RollNo    string    `gorm:"size:20;index;not null" json:"roll_no"`
	Reason    string    `gorm:"size:32;not null" json:"reason"`
	ExitTime  string    `gorm:"size:5;not null" json:"exit_time"`
	CreatedAt time.Time `json:"created_at"`
}
