package enums

import "fmt"

// Irrigation is how often the lawn is watered.
type Irrigation string

const (
	IrrigationDaily      Irrigation = "diaria"
	IrrigationThriceWeek Irrigation = "3x_semana"
	IrrigationOnceWeek   Irrigation = "1x_semana"
	IrrigationRarely     Irrigation = "raramente"
)

var validIrrigations = []Irrigation{
	IrrigationDaily,
	IrrigationThriceWeek,
	IrrigationOnceWeek,
	IrrigationRarely,
}

func (i Irrigation) String() string {
	return string(i)
}

func (i Irrigation) IsValid() bool {
	for _, candidate := range validIrrigations {
		if candidate == i {
			return true
		}
	}
	return false
}

func ParseIrrigation(value string) (Irrigation, error) {
	for _, candidate := range validIrrigations {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid irrigation %q", value)
}
