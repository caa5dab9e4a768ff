package subscription

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/KairamCabral/terravik-sub003/internal/pricing"
)

func newPricingService(t *testing.T) *pricing.Service {
	t.Helper()
	svc, err := pricing.NewService(pricing.ServiceParams{
		ShippingFee:   decimal.RequireFromString("12.90"),
		HorizonMonths: 12,
	})
	if err != nil {
		t.Fatalf("new pricing service: %v", err)
	}
	return svc
}

func postCalculate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := Calculate(newPricingService(t), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscription/pricing", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler(resp, req)
	return resp
}

func TestCalculateSingleItemBasket(t *testing.T) {
	resp := postCalculate(t, `{"products":[{"basePrice":89.90,"quantity":1}],"frequency":45,"startDate":"2026-03-10"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Success     bool                 `json:"success"`
		Calculation *pricing.Calculation `json:"calculation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Calculation == nil {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Calculation.Pricing.TotalBasePrice != 89.90 {
		t.Fatalf("expected totalBasePrice 89.90, got %v", body.Calculation.Pricing.TotalBasePrice)
	}
	if body.Calculation.Pricing.TotalSubscriptionPrice >= body.Calculation.Pricing.TotalBasePrice {
		t.Fatalf("subscription total must be strictly below base total")
	}
	if body.Calculation.Schedule.DeliveriesPerYear != 8 {
		t.Fatalf("expected 8 deliveries/year, got %d", body.Calculation.Schedule.DeliveriesPerYear)
	}
	if len(body.Calculation.Schedule.Dates) != 8 {
		t.Fatalf("expected 8 delivery dates, got %d", len(body.Calculation.Schedule.Dates))
	}
	if body.Calculation.Schedule.Dates[0] != "2026-04-24" {
		t.Fatalf("first delivery must land 45 days after start, got %s", body.Calculation.Schedule.Dates[0])
	}
}

func TestCalculateRejectsUnsupportedFrequency(t *testing.T) {
	resp := postCalculate(t, `{"products":[{"basePrice":10,"quantity":1}],"frequency":40}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "30, 45, 60, 90") {
		t.Fatalf("error must name the allowed set: %s", resp.Body.String())
	}
}

func TestCalculateRejectsMissingProducts(t *testing.T) {
	resp := postCalculate(t, `{"frequency":30}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCalculateRejectsMissingFrequency(t *testing.T) {
	resp := postCalculate(t, `{"products":[{"basePrice":10,"quantity":1}]}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCalculateRejectsNonListProducts(t *testing.T) {
	resp := postCalculate(t, `{"products":"lots","frequency":30}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCalculateRejectsNonPositivePrice(t *testing.T) {
	resp := postCalculate(t, `{"products":[{"basePrice":0,"quantity":1}],"frequency":30}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCalculateRejectsBadStartDate(t *testing.T) {
	resp := postCalculate(t, `{"products":[{"basePrice":10,"quantity":1}],"frequency":30,"startDate":"10/03/2026"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOptionsCatalog(t *testing.T) {
	handler := Options()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription/pricing", nil)
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Success     bool                      `json:"success"`
		Frequencies []pricing.FrequencyOption `json:"frequencies"`
		Benefits    []string                  `json:"benefits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success flag")
	}
	if len(body.Frequencies) != 4 {
		t.Fatalf("expected 4 frequency options, got %d", len(body.Frequencies))
	}
	recommended := 0
	for _, opt := range body.Frequencies {
		if opt.Recommended {
			recommended++
		}
	}
	if recommended != 1 {
		t.Fatalf("expected exactly one recommended option, got %d", recommended)
	}
	if len(body.Benefits) == 0 {
		t.Fatal("expected benefits list")
	}
}
