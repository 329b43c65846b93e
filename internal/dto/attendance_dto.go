package dto

// AttendanceResponse reports a student's attendance percentage. Available is
// false when the academic record could not be reached; the rest of the
// payload is then zero-valued and callers should show "unavailable".
type AttendanceResponse struct {
	RollNo     string  `json:"roll_no"`
	Percentage float64 `json:"percentage"`
	Available  bool    `json:"available"`
}
