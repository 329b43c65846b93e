package models

import "time"

// LeaveRequest is a student's application to leave campus before the end of
// the day. It is created addressed to one faculty approver and moves through
// the faculty and admin stages before an outgoing record is cut.
type LeaveRequest struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	RollNo    string     `gorm:"size:20;index;not null" json:"roll_no"`
	Recipient string     `gorm:"size:64;index;not null" json:"recipient"`
	Reason    string     `gorm:"size:32;not null" json:"reason"`
	ExitTime  string     `gorm:"size:5;not null" json:"exit_time"`
	Status    string     `gorm:"size:20;index;not null" json:"status"`
	DecidedBy string     `gorm:"size:64" json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

const (
	// StatusPending indicates the request awaits the bound faculty approver.
	StatusPending = "pending"
	// StatusAdminPending indicates faculty approval, awaiting the admin office.
	StatusAdminPending = "admin pending"
	// StatusApproved is terminal; an outgoing record exists for the student.
	StatusApproved = "approved"
	// StatusRejected is terminal; no outgoing record is ever created.
	StatusRejected = "rejected"
)

const (
	// ActionApprove advances a request to its next stage.
	ActionApprove = "approve"
	// ActionReject terminates a request at its current stage.
	ActionReject = "reject"
)

// IsDecided reports whether the request reached a terminal state.
func (r LeaveRequest) IsDecided() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// ValidAction reports whether the given action string is recognised.
func ValidAction(action string) bool {
	return action == ActionApprove || action == ActionReject
}
