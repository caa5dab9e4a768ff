package enums

import "fmt"

// FrequencyDays is the number of days between subscription deliveries.
// Only four values are sold.
type FrequencyDays int

const (
	Frequency30 FrequencyDays = 30
	Frequency45 FrequencyDays = 45
	Frequency60 FrequencyDays = 60
	Frequency90 FrequencyDays = 90
)

// ValidFrequencies lists the allowed values in ascending order.
var ValidFrequencies = []FrequencyDays{
	Frequency30,
	Frequency45,
	Frequency60,
	Frequency90,
}

// Days returns the frequency as a plain day count.
func (f FrequencyDays) Days() int {
	return int(f)
}

// IsValid reports whether the frequency is one of the four sold intervals.
func (f FrequencyDays) IsValid() bool {
	for _, candidate := range ValidFrequencies {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFrequencyDays converts a raw day count into a FrequencyDays.
func ParseFrequencyDays(value int) (FrequencyDays, error) {
	for _, candidate := range ValidFrequencies {
		if candidate.Days() == value {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("invalid frequency %d: allowed values are 30, 45, 60, 90", value)
}
