// Package dosage implements the lawn survey calculator: product selection,
// dose resolution, pack covering, and reapplication scheduling. The engine
// is a pure function of its input plus the catalog; the reference date is an
// explicit parameter so identical calls produce identical output.
package dosage

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/KairamCabral/terravik-sub003/internal/catalog"
	"github.com/KairamCabral/terravik-sub003/pkg/enums"
)

// ServiceParams groups dependencies for the dosage service.
type ServiceParams struct {
	Products []catalog.Product
}

// Service computes dosage plans from lawn surveys.
type Service struct {
	products []catalog.Product
}

// NewService builds a dosage service over the given product table.
func NewService(params ServiceParams) (*Service, error) {
	if len(params.Products) == 0 {
		return nil, errors.New("product table is required")
	}
	return &Service{products: params.Products}, nil
}

// Recommend maps a validated survey to a set of product plans. today anchors
// the next-application date.
func (s *Service) Recommend(input CalculatorInput, today time.Time) (*CalculatorResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ids, forcedRaizes := selectProducts(input)

	result := &CalculatorResult{
		Input:  input,
		AreaM2: input.AreaM2,
	}

	intervals := make([]int, 0, len(ids))
	var alertList []string

	for _, id := range ids {
		product, ok := s.productByID(id)
		if !ok {
			return nil, fmt.Errorf("product %s missing from table", id)
		}

		dose, notes, doseAlerts := resolveDose(product, input)
		alertList = append(alertList, doseAlerts...)

		need := input.AreaM2 * dose
		packs := CoverNeed(need, product.PackSizesG)
		interval := resolveIntervalDays(product, input.Climate)
		intervals = append(intervals, interval)

		if forcedRaizes && id == enums.ProductRaizes {
			notes = append(notes, "Incluído automaticamente: falhas no gramado pedem o adubo de implantação.")
		}
		notes = append(notes, product.Cautions...)

		result.Plans = append(result.Plans, ProductPlan{
			ProductID:       product.ID,
			Name:            product.Name,
			DoseGM2:         dose,
			NeedG:           need,
			NeedDisplay:     FormatGrams(roundToTen(need)),
			Packs:           packs,
			PacksDisplay:    FormatPacks(packs),
			IntervalDays:    interval,
			IntervalDisplay: formatInterval(interval),
			Notes:           notes,
			Guidance:        product.Guidance,
		})
	}

	if input.Objective == enums.ObjectiveFullPlan {
		intervals = staggerIntervals(intervals)
		for i := range result.Plans {
			result.Plans[i].IntervalDays = intervals[i]
			result.Plans[i].IntervalDisplay = formatInterval(intervals[i])
		}
	}

	alertList = append(alertList, crossAlerts(input)...)
	result.Alerts = dedupe(alertList)
	result.Summary = buildSummary(result.Plans, today)
	return result, nil
}

func (s *Service) productByID(id enums.ProductID) (catalog.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func buildSummary(plans []ProductPlan, today time.Time) Summary {
	shortest := 0
	for _, plan := range plans {
		if shortest == 0 || plan.IntervalDays < shortest {
			shortest = plan.IntervalDays
		}
	}

	steps := make([]string, 0, len(plans)+2)
	for _, plan := range plans {
		steps = append(steps, fmt.Sprintf("Aplique %s: %s (%s).", plan.Name, plan.NeedDisplay, plan.PacksDisplay))
	}
	steps = append(steps, "Regue bem logo após cada aplicação.")

	next := today.AddDate(0, 0, shortest)
	steps = append(steps, fmt.Sprintf("Reaplique a partir de %s.", next.Format("02/01/2006")))

	return Summary{
		NextApplicationDate: next.Format("2006-01-02"),
		NextSteps:           steps,
	}
}

// roundToTen is display-only; pack math uses the unrounded need.
func roundToTen(grams float64) float64 {
	return math.Round(grams/10) * 10
}

func formatInterval(days int) string {
	if days%7 == 0 {
		weeks := days / 7
		if weeks == 1 {
			return "a cada 1 semana"
		}
		return fmt.Sprintf("a cada %d semanas", weeks)
	}
	return fmt.Sprintf("a cada %d dias", days)
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
