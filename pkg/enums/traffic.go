package enums

import "fmt"

// Traffic is the foot-traffic level the lawn takes.
type Traffic string

const (
	TrafficLow    Traffic = "baixo"
	TrafficMedium Traffic = "medio"
	TrafficHigh   Traffic = "alto"
)

var validTraffics = []Traffic{
	TrafficLow,
	TrafficMedium,
	TrafficHigh,
}

func (t Traffic) String() string {
	return string(t)
}

func (t Traffic) IsValid() bool {
	for _, candidate := range validTraffics {
		if candidate == t {
			return true
		}
	}
	return false
}

func ParseTraffic(value string) (Traffic, error) {
	for _, candidate := range validTraffics {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid traffic %q", value)
}
