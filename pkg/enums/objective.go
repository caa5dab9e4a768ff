package enums

import "fmt"

// Objective is the customer's declared fertilizing goal. It is the primary
// selector for which products end up in a dosage plan.
type Objective string

const (
	ObjectiveEstablishment Objective = "implantacao"
	ObjectiveGreenVigor    Objective = "verde_vigor"
	ObjectiveResistance    Objective = "resistencia"
	ObjectiveFullPlan      Objective = "plano_completo"
)

var validObjectives = []Objective{
	ObjectiveEstablishment,
	ObjectiveGreenVigor,
	ObjectiveResistance,
	ObjectiveFullPlan,
}

// String implements fmt.Stringer.
func (o Objective) String() string {
	return string(o)
}

// IsValid reports whether the objective is recognized.
func (o Objective) IsValid() bool {
	for _, candidate := range validObjectives {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseObjective converts a raw string into an Objective.
func ParseObjective(value string) (Objective, error) {
	for _, candidate := range validObjectives {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid objective %q", value)
}
