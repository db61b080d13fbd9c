package enums

import "fmt"

// Time is the discrete hour counter driving a character's day: 0 is
// night, 16 is dawn, intermediate values count down the half-hours of
// daylight remaining.
type Time int

const (
	Night Time = 0
	Dawn  Time = 16
)

// IsNight reports whether t has reached the night boundary.
func (t Time) IsNight() bool { return t <= Night }

// IsDawn reports whether t is exactly the dawn value.
func (t Time) IsDawn() bool { return t == Dawn }

// String renders the remaining daylight, showing a half-hour remainder
// instead of truncating it away.
func (t Time) String() string {
	if t <= Night {
		return "night has fallen"
	}
	whole := int(t) / 2
	if int(t)%2 == 0 {
		return fmt.Sprintf("%d hours of day remain", whole)
	}
	return fmt.Sprintf("%d and a half hours of day remain", whole)
}
