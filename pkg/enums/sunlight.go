package enums

import "fmt"

// Sunlight is the exposure level of the lawn.
type Sunlight string

const (
	SunlightFull      Sunlight = "sol_pleno"
	SunlightHalfShade Sunlight = "meia_sombra"
	SunlightShade     Sunlight = "sombra"
)

var validSunlights = []Sunlight{
	SunlightFull,
	SunlightHalfShade,
	SunlightShade,
}

func (s Sunlight) String() string {
	return string(s)
}

func (s Sunlight) IsValid() bool {
	for _, candidate := range validSunlights {
		if candidate == s {
			return true
		}
	}
	return false
}

func ParseSunlight(value string) (Sunlight, error) {
	for _, candidate := range validSunlights {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sunlight %q", value)
}
