package enums

import "fmt"

// Condition is the current state of the lawn cover.
type Condition string

const (
	ConditionDenseGreen   Condition = "denso_verde"
	ConditionRegular      Condition = "regular"
	ConditionSparsePatchy Condition = "ralo_falhas"
)

var validConditions = []Condition{
	ConditionDenseGreen,
	ConditionRegular,
	ConditionSparsePatchy,
}

func (c Condition) String() string {
	return string(c)
}

func (c Condition) IsValid() bool {
	for _, candidate := range validConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

func ParseCondition(value string) (Condition, error) {
	for _, candidate := range validConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid condition %q", value)
}
