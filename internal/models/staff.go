package models

import "time"

// Staff roles recognised by the login and RBAC layers.
const (
	RoleStudent  = "student"
	RoleFaculty  = "faculty"
	RoleAdmin    = "admin"
	RoleSecurity = "security"
)

// StaffAccount is a non-student login: faculty approvers, the admin office
// and the security checkpoint.
type StaffAccount struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Role         string    `gorm:"size:16;index;not null" json:"role"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidStaffRole reports whether the role names a staff login kind.
func ValidStaffRole(role string) bool {
	switch role {
	case RoleFaculty, RoleAdmin, RoleSecurity:
		return true
	default:
		return false
	}
}
