package models

import "fmt"

// Leave reasons accepted from the mobile client.
const (
	ReasonSick       = "sick"
	ReasonFunction   = "function"
	ReasonHackathon  = "hackathon"
	ReasonInternship = "internship"
)

// exitSlotCount covers 08:00 through 17:00 in half-hour steps.
const exitSlotCount = 19

// ExitSlots returns the daily grid of permitted exit times.
func ExitSlots() []string {
	slots := make([]string, 0, exitSlotCount)
	for i := 0; i < exitSlotCount; i++ {
		hour := i/2 + 8
		minute := (i % 2) * 30
		slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
	}
	return slots
}

// ValidExitTime reports whether the value lands on the permitted slot grid.
func ValidExitTime(value string) bool {
	for _, slot := range ExitSlots() {
		if slot == value {
			return true
		}
	}
	return false
}
