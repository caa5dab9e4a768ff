// Package subscription exposes the pricing engine over HTTP. The POST
// response keeps the storefront's documented shape instead of the standard
// data envelope.
package subscription

import (
	"net/http"
	"time"

	"github.com/KairamCabral/terravik-sub003/api/responses"
	"github.com/KairamCabral/terravik-sub003/api/validators"
	"github.com/KairamCabral/terravik-sub003/internal/pricing"
	"github.com/KairamCabral/terravik-sub003/pkg/enums"
	pkgerrors "github.com/KairamCabral/terravik-sub003/pkg/errors"
	"github.com/KairamCabral/terravik-sub003/pkg/logger"
)

// QuoteService describes the pricing methods the controllers use.
type QuoteService interface {
	QuoteBasket(items []pricing.BasketItem, frequency enums.FrequencyDays, startDate time.Time) (*pricing.Calculation, error)
}

type calculateRequest struct {
	Products  []pricing.BasketItem `json:"products" validate:"required,min=1"`
	Frequency *int                 `json:"frequency" validate:"required"`
	// StartDate optionally anchors the delivery calendar (ISO date);
	// defaults to today.
	StartDate string `json:"startDate,omitempty"`
}

type calculateResponse struct {
	Success     bool                 `json:"success"`
	Calculation *pricing.Calculation `json:"calculation"`
}

type optionsResponse struct {
	Success     bool                      `json:"success"`
	Frequencies []pricing.FrequencyOption `json:"frequencies"`
	Benefits    []string                  `json:"benefits"`
}

// Calculate handles the POST pricing calculation.
func Calculate(svc QuoteService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pricing service unavailable"))
			return
		}

		var payload calculateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		frequency, err := enums.ParseFrequencyDays(*payload.Frequency)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, err.Error()).
				WithDetails(map[string]any{"allowed": []int{30, 45, 60, 90}}))
			return
		}

		startDate, err := resolveStartDate(payload.StartDate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		calculation, err := svc.QuoteBasket(payload.Products, frequency, startDate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, calculateResponse{
			Success:     true,
			Calculation: calculation,
		})
	}
}

// Options handles the GET side: the static frequency catalog.
func Options() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteJSON(w, http.StatusOK, optionsResponse{
			Success:     true,
			Frequencies: pricing.FrequencyOptions(),
			Benefits:    pricing.Benefits(),
		})
	}
}

func resolveStartDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "startDate must be an ISO date (YYYY-MM-DD)")
	}
	return parsed, nil
}
