// Package calculator exposes the dosage engine for the lawn survey wizard.
package calculator

import (
	"net/http"
	"time"

	"github.com/KairamCabral/terravik-sub003/api/responses"
	"github.com/KairamCabral/terravik-sub003/api/validators"
	"github.com/KairamCabral/terravik-sub003/internal/catalog"
	"github.com/KairamCabral/terravik-sub003/internal/dosage"
	pkgerrors "github.com/KairamCabral/terravik-sub003/pkg/errors"
	"github.com/KairamCabral/terravik-sub003/pkg/logger"
)

// RecommendService describes the dosage methods the controllers use.
type RecommendService interface {
	Recommend(input dosage.CalculatorInput, today time.Time) (*dosage.CalculatorResult, error)
}

// Recommend handles the POST lawn survey.
func Recommend(svc RecommendService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dosage service unavailable"))
			return
		}

		var input dosage.CalculatorInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Recommend(input, time.Now().UTC())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

type productResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	ShortName         string   `json:"short_name"`
	Base              string   `json:"base"`
	DoseMinGM2        float64  `json:"dose_min_g_m2"`
	DoseMaxGM2        float64  `json:"dose_max_g_m2"`
	DoseDefaultGM2    float64  `json:"dose_default_g_m2"`
	FrequencyWeeksMin int      `json:"frequency_weeks_min"`
	FrequencyWeeksMax int      `json:"frequency_weeks_max"`
	PackSizesG        []int    `json:"pack_sizes_g"`
	Guidance          string   `json:"guidance"`
	Cautions          []string `json:"cautions"`
}

// Products serves the static SKU table for the wizard.
func Products() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		table := catalog.Products()
		out := make([]productResponse, 0, len(table))
		for _, p := range table {
			out = append(out, productResponse{
				ID:                p.ID.String(),
				Name:              p.Name,
				ShortName:         p.ShortName,
				Base:              p.Base,
				DoseMinGM2:        p.DoseMinGM2,
				DoseMaxGM2:        p.DoseMaxGM2,
				DoseDefaultGM2:    p.DoseDefault,
				FrequencyWeeksMin: p.FrequencyWeeksMin,
				FrequencyWeeksMax: p.FrequencyWeeksMax,
				PackSizesG:        p.PackSizesG,
				Guidance:          p.Guidance,
				Cautions:          p.Cautions,
			})
		}
		responses.WriteSuccess(w, map[string]any{"products": out})
	}
}
