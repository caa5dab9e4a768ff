package dosage

import (
	"github.com/KairamCabral/terravik-sub003/internal/catalog"
	"github.com/KairamCabral/terravik-sub003/pkg/enums"
)

// selectionByObjective maps the survey objective to the base product set.
// Secondary inputs modulate doses but never change this mapping, except the
// sparse-lawn override in selectProducts.
var selectionByObjective = map[enums.Objective][]enums.ProductID{
	enums.ObjectiveEstablishment: {enums.ProductRaizes},
	enums.ObjectiveGreenVigor:    {enums.ProductVerdeIntens},
	enums.ObjectiveResistance:    {enums.ProductEscudo},
	enums.ObjectiveFullPlan:      {enums.ProductRaizes, enums.ProductVerdeIntens, enums.ProductEscudo},
}

// selectProducts resolves the product set for the survey. A sparse, patchy
// lawn forces the establishment product in even when the objective did not
// ask for it.
func selectProducts(in CalculatorInput) (ids []enums.ProductID, forcedRaizes bool) {
	ids = append(ids, selectionByObjective[in.Objective]...)
	if in.Condition == enums.ConditionSparsePatchy && !containsProduct(ids, enums.ProductRaizes) {
		ids = append(ids, enums.ProductRaizes)
		forcedRaizes = true
	}
	return ids, forcedRaizes
}

func containsProduct(ids []enums.ProductID, id enums.ProductID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// doseRule shifts the resolved dose away from the catalog default. Positive
// shifts move toward doseMax, negative toward doseMin. The accumulated
// factor is clamped to [-1, +1] before scaling.
type doseRule struct {
	applies func(CalculatorInput) bool
	shift   float64
	note    string
	alert   string
}

var doseRules = []doseRule{
	{
		applies: func(in CalculatorInput) bool { return in.Condition == enums.ConditionSparsePatchy },
		shift:   0.50,
		note:    "Dose reforçada: gramado ralo ou com falhas.",
	},
	{
		applies: func(in CalculatorInput) bool { return in.Traffic == enums.TrafficHigh },
		shift:   0.25,
		note:    "Dose reforçada: área de pisoteio intenso.",
	},
	{
		applies: func(in CalculatorInput) bool { return in.Climate == enums.ClimateHotDry },
		shift:   -0.50,
		alert:   "Clima quente e seco: dose reduzida para evitar queima do gramado.",
	},
	{
		applies: func(in CalculatorInput) bool { return in.Irrigation == enums.IrrigationRarely },
		shift:   -0.50,
		alert:   "Irrigação rara: dose reduzida; fertilizante sem rega pode queimar o gramado.",
	},
	{
		applies: func(in CalculatorInput) bool { return in.Irrigation == enums.IrrigationOnceWeek },
		shift:   -0.25,
	},
	{
		applies: func(in CalculatorInput) bool { return in.Sunlight == enums.SunlightShade },
		shift:   -0.25,
		note:    "Dose reduzida: áreas de sombra absorvem menos nutrientes.",
	},
	{
		applies: func(in CalculatorInput) bool { return in.Sunlight == enums.SunlightHalfShade },
		shift:   -0.10,
	},
}

// resolveDose walks the rule table and returns the clamped dose for the
// product plus the notes and alerts the matched rules raised.
func resolveDose(p catalog.Product, in CalculatorInput) (dose float64, notes, alerts []string) {
	factor := 0.0
	for _, rule := range doseRules {
		if !rule.applies(in) {
			continue
		}
		factor += rule.shift
		if rule.note != "" {
			notes = append(notes, rule.note)
		}
		if rule.alert != "" {
			alerts = append(alerts, rule.alert)
		}
	}
	if factor > 1 {
		factor = 1
	}
	if factor < -1 {
		factor = -1
	}

	dose = p.DoseDefault
	if factor > 0 {
		dose += factor * (p.DoseMaxGM2 - p.DoseDefault)
	} else if factor < 0 {
		dose += factor * (p.DoseDefault - p.DoseMinGM2)
	}
	if dose > p.DoseMaxGM2 {
		dose = p.DoseMaxGM2
	}
	if dose < p.DoseMinGM2 {
		dose = p.DoseMinGM2
	}
	return dose, notes, alerts
}

// resolveIntervalDays picks the reapplication interval inside the product's
// week range. Hot rainy weather leaches nutrients faster; cold slows growth.
func resolveIntervalDays(p catalog.Product, climate enums.Climate) int {
	minDays := p.FrequencyWeeksMin * 7
	maxDays := p.FrequencyWeeksMax * 7
	switch climate {
	case enums.ClimateHotRainy:
		return minDays
	case enums.ClimateCold:
		return maxDays
	default:
		return (minDays + maxDays) / 2
	}
}

// staggerIntervals spreads full-plan intervals apart so the products do not
// all come due on the same week. Order follows the plan order.
func staggerIntervals(intervals []int) []int {
	for i := 1; i < len(intervals); i++ {
		for collides(intervals[:i], intervals[i]) {
			intervals[i] += 7
		}
	}
	return intervals
}

func collides(earlier []int, interval int) bool {
	for _, e := range earlier {
		if e == interval {
			return true
		}
	}
	return false
}

// alertRule raises a cross-cutting advisory on the whole result.
type alertRule struct {
	applies func(CalculatorInput) bool
	message string
}

var alertRules = []alertRule{
	{
		applies: func(in CalculatorInput) bool {
			return in.Establishing && in.Objective == enums.ObjectiveResistance
		},
		message: "Gramado em implantação: o foco apenas em resistência não cobre o enraizamento; considere incluir o adubo de implantação.",
	},
	{
		applies: func(in CalculatorInput) bool {
			return in.Sunlight == enums.SunlightFull && in.Irrigation == enums.IrrigationRarely
		},
		message: "Sol pleno com irrigação rara: regue sempre logo após aplicar para não queimar o gramado.",
	},
	{
		applies: func(in CalculatorInput) bool {
			return in.Traffic == enums.TrafficHigh && in.Establishing
		},
		message: "Evite pisoteio intenso durante a implantação; o gramado novo ainda não suporta tráfego.",
	},
}

func crossAlerts(in CalculatorInput) []string {
	var alerts []string
	for _, rule := range alertRules {
		if rule.applies(in) {
			alerts = append(alerts, rule.message)
		}
	}
	return alerts
}
