package dosage

import (
	"fmt"
	"math"

	"github.com/KairamCabral/terravik-sub003/pkg/enums"
	pkgerrors "github.com/KairamCabral/terravik-sub003/pkg/errors"
)

// CalculatorInput is one lawn survey submission.
type CalculatorInput struct {
	AreaM2       float64          `json:"area_m2"`
	Establishing bool             `json:"implantando"`
	Objective    enums.Objective  `json:"objetivo"`
	Climate      enums.Climate    `json:"clima_hoje"`
	Sunlight     enums.Sunlight   `json:"sol"`
	Irrigation   enums.Irrigation `json:"irrigacao"`
	Traffic      enums.Traffic    `json:"pisoteio"`
	Condition    enums.Condition  `json:"nivel"`
}

// Validate rejects malformed survey answers. The engine never guesses a
// value for a missing or unrecognized field.
func (in CalculatorInput) Validate() error {
	if math.IsNaN(in.AreaM2) || math.IsInf(in.AreaM2, 0) || in.AreaM2 <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "area_m2 must be a finite positive number")
	}
	if !in.Objective.IsValid() {
		return invalidField("objetivo", in.Objective.String())
	}
	if !in.Climate.IsValid() {
		return invalidField("clima_hoje", in.Climate.String())
	}
	if !in.Sunlight.IsValid() {
		return invalidField("sol", in.Sunlight.String())
	}
	if !in.Irrigation.IsValid() {
		return invalidField("irrigacao", in.Irrigation.String())
	}
	if !in.Traffic.IsValid() {
		return invalidField("pisoteio", in.Traffic.String())
	}
	if !in.Condition.IsValid() {
		return invalidField("nivel", in.Condition.String())
	}
	return nil
}

func invalidField(field, value string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unrecognized %s value", field)).
		WithDetails(map[string]string{field: value})
}

// PackRecommendation is one package size and how many of it to buy.
type PackRecommendation struct {
	SizeG    int `json:"size_g"`
	Quantity int `json:"quantity"`
}

// TotalGrams returns size times quantity.
func (p PackRecommendation) TotalGrams() int {
	return p.SizeG * p.Quantity
}

// ProductPlan is the per-product output of the engine.
type ProductPlan struct {
	ProductID       enums.ProductID      `json:"product_id"`
	Name            string               `json:"name"`
	DoseGM2         float64              `json:"dose_g_m2"`
	NeedG           float64              `json:"need_g"`
	NeedDisplay     string               `json:"need_display"`
	Packs           []PackRecommendation `json:"packs"`
	PacksDisplay    string               `json:"packs_display"`
	IntervalDays    int                  `json:"interval_days"`
	IntervalDisplay string               `json:"interval_display"`
	Notes           []string             `json:"notes"`
	Guidance        string               `json:"guidance"`
}

// Summary carries the next-step block of a result.
type Summary struct {
	NextApplicationDate string   `json:"next_application_date"`
	NextSteps           []string `json:"next_steps"`
}

// CalculatorResult is the full engine output for one submission. It is
// computed on demand and never persisted here.
type CalculatorResult struct {
	Input   CalculatorInput `json:"input"`
	AreaM2  float64         `json:"area_m2"`
	Plans   []ProductPlan   `json:"plans"`
	Alerts  []string        `json:"alerts"`
	Summary Summary         `json:"summary"`
}
