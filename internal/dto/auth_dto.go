package dto

import "github.com/nps-campus/gatepass-api/internal/models"

// StudentLoginRequest authenticates a student by roll number.
type StudentLoginRequest struct {
	RollNo   string `json:"roll_no" validate:"required,max=20"`
	Password string `json:"password" validate:"required,min=4"`
}

// StaffLoginRequest authenticates faculty, admin and security accounts.
type StaffLoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=4"`
}

// StudentProfile is returned on student login so the app can bind the
// request form to the student's mentor and HOD.
type StudentProfile struct {
	RollNo  string `json:"roll_no"`
	Name    string `json:"name"`
	Branch  string `json:"branch"`
	Year    string `json:"year"`
	Section string `json:"section"`
	Mentor  string `json:"mentor"`
	HOD     string `json:"hod"`
	Phone   string `json:"phone"`
}

// StaffProfile is returned on staff login.
type StaffProfile struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResponse carries the bearer token plus the matching profile.
type LoginResponse struct {
	Token   string          `json:"token"`
	Student *StudentProfile `json:"student,omitempty"`
	Staff   *StaffProfile   `json:"staff,omitempty"`
}

// FacultyRegisterRequest creates a faculty account (admin only).
type FacultyRegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Name     string `json:"name" validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// NewStudentProfile converts a Student model into its login profile.
func NewStudentProfile(model models.Student) StudentProfile {
	return StudentProfile{
		RollNo:  model.RollNo,
		Name:    model.Name,
		Branch:  model.Branch,
		Year:    model.Year,
		Section: model.Section,
		Mentor:  model.Mentor,
		HOD:     model.HOD,
		Phone:   model.Phone,
	}
}

// NewStaffProfile converts a StaffAccount model into its login profile.
func NewStaffProfile(model models.StaffAccount) StaffProfile {
	return StaffProfile{
		Username: model.Username,
		Name:     model.Name,
		Role:     model.Role,
	}
}
