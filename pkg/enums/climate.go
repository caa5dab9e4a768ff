package enums

import "fmt"

// Climate captures the current weather pattern reported in the lawn survey.
type Climate string

const (
	ClimateMild     Climate = "ameno"
	ClimateHotDry   Climate = "quente_seco"
	ClimateHotRainy Climate = "quente_chuvoso"
	ClimateCold     Climate = "frio"
)

var validClimates = []Climate{
	ClimateMild,
	ClimateHotDry,
	ClimateHotRainy,
	ClimateCold,
}

func (c Climate) String() string {
	return string(c)
}

func (c Climate) IsValid() bool {
	for _, candidate := range validClimates {
		if candidate == c {
			return true
		}
	}
	return false
}

func ParseClimate(value string) (Climate, error) {
	for _, candidate := range validClimates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid climate %q", value)
}
