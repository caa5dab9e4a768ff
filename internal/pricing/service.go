// Package pricing computes subscription economics: tiered discounts by
// delivery frequency, the forward delivery calendar, and yearly savings
// framing. Every operation is a pure function of its arguments.
package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KairamCabral/terravik-sub003/pkg/enums"
	pkgerrors "github.com/KairamCabral/terravik-sub003/pkg/errors"
)

// averageMonthDays converts the month horizon into a day bound. The
// calendar deliberately uses day arithmetic on this average rather than
// calendar months; correcting it would change observable output.
const averageMonthDays = 30.44

// ServiceParams groups dependencies for the pricing service.
type ServiceParams struct {
	ShippingFee   decimal.Decimal
	HorizonMonths int
}

// Service quotes subscription pricing for baskets.
type Service struct {
	shippingFee   decimal.Decimal
	horizonMonths int
}

// NewService builds a pricing service.
func NewService(params ServiceParams) (*Service, error) {
	if params.ShippingFee.IsNegative() {
		return nil, errors.New("shipping fee must be non-negative")
	}
	if params.HorizonMonths <= 0 {
		return nil, errors.New("horizon months must be positive")
	}
	return &Service{
		shippingFee:   params.ShippingFee,
		horizonMonths: params.HorizonMonths,
	}, nil
}

// SubscriptionPrice applies the frequency discount to a base price,
// rounded to cents.
func SubscriptionPrice(basePrice decimal.Decimal, frequency enums.FrequencyDays) (decimal.Decimal, error) {
	discount, ok := discountByFrequency[frequency]
	if !ok {
		return decimal.Zero, invalidFrequency(frequency)
	}
	if !basePrice.IsPositive() {
		return decimal.Zero, invalidProduct(basePrice)
	}
	return basePrice.Mul(decimal.NewFromInt(1).Sub(discount)).Round(2), nil
}

// DeliveriesPerYear is floor(365 / frequency).
func DeliveriesPerYear(frequency enums.FrequencyDays) (int, error) {
	if !frequency.IsValid() {
		return 0, invalidFrequency(frequency)
	}
	return 365 / frequency.Days(), nil
}

// DeliveryDates generates the forward calendar: the first delivery lands
// frequency days after start, then every frequency days until the horizon
// day bound (months × 30.44) is exhausted. The sequence is strictly
// increasing and restartable by recomputation.
func DeliveryDates(start time.Time, frequency enums.FrequencyDays, horizonMonths int) ([]time.Time, error) {
	if !frequency.IsValid() {
		return nil, invalidFrequency(frequency)
	}
	if horizonMonths <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "horizon months must be positive")
	}

	horizonDays := int(float64(horizonMonths) * averageMonthDays)
	dates := make([]time.Time, 0, horizonDays/frequency.Days())
	for offset := frequency.Days(); offset <= horizonDays; offset += frequency.Days() {
		dates = append(dates, start.AddDate(0, 0, offset))
	}
	return dates, nil
}

// SavingsAnalogy maps an annual savings amount to a relatable phrase.
// Negative input is treated as zero so the lookup stays total.
func SavingsAnalogy(annualSavings decimal.Decimal) string {
	if annualSavings.IsNegative() {
		annualSavings = decimal.Zero
	}
	for _, bucket := range savingsAnalogyBuckets {
		if annualSavings.LessThan(bucket.upTo) {
			return bucket.message
		}
	}
	return savingsAnalogyTop
}

// FrequencyOptions returns the four sold intervals with their discounts.
func FrequencyOptions() []FrequencyOption {
	options := make([]FrequencyOption, 0, len(enums.ValidFrequencies))
	for _, f := range enums.ValidFrequencies {
		options = append(options, FrequencyOption{
			Days:            f.Days(),
			DiscountPercent: discountByFrequency[f].Shift(2).InexactFloat64(),
			Label:           labelByFrequency[f],
			Recommended:     f == recommendedFrequency,
		})
	}
	return options
}

// Benefits returns the fixed subscription benefits list.
func Benefits() []string {
	out := make([]string, len(subscriptionBenefits))
	copy(out, subscriptionBenefits)
	return out
}

// QuoteBasket prices a basket at the given frequency. startDate anchors the
// delivery calendar so identical calls produce identical output.
func (s *Service) QuoteBasket(items []BasketItem, frequency enums.FrequencyDays, startDate time.Time) (*Calculation, error) {
	if !frequency.IsValid() {
		return nil, invalidFrequency(frequency)
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "products must not be empty")
	}

	discount := discountByFrequency[frequency]
	totalBase := decimal.Zero
	totalSub := decimal.Zero
	products := make([]ItemPricing, 0, len(items))

	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("products[%d]: quantity must be positive", i))
		}
		base := decimal.NewFromFloat(item.BasePrice)
		sub, err := SubscriptionPrice(base, frequency)
		if err != nil {
			return nil, err
		}

		qty := decimal.NewFromInt(int64(item.Quantity))
		totalBase = totalBase.Add(base.Mul(qty))
		totalSub = totalSub.Add(sub.Mul(qty))

		products = append(products, ItemPricing{
			BasePrice:         base.InexactFloat64(),
			SubscriptionPrice: sub.InexactFloat64(),
			Quantity:          item.Quantity,
			SavingsPerUnit:    base.Sub(sub).InexactFloat64(),
			DiscountPercent:   discount.Shift(2).InexactFloat64(),
		})
	}

	deliveries, err := DeliveriesPerYear(frequency)
	if err != nil {
		return nil, err
	}
	dates, err := DeliveryDates(startDate, frequency, s.horizonMonths)
	if err != nil {
		return nil, err
	}

	deliveriesDec := decimal.NewFromInt(int64(deliveries))
	// Shipping is waived under subscription, so it counts toward savings.
	savingsPerDelivery := totalBase.Sub(totalSub).Add(s.shippingFee)
	annualSavings := savingsPerDelivery.Mul(deliveriesDec)
	oneTimeAnnual := totalBase.Add(s.shippingFee).Mul(deliveriesDec)
	subAnnual := totalSub.Mul(deliveriesDec)

	isoDates := make([]string, 0, len(dates))
	for _, d := range dates {
		isoDates = append(isoDates, d.Format("2006-01-02"))
	}

	return &Calculation{
		Products:  products,
		Frequency: frequency.Days(),
		Pricing: Pricing{
			TotalBasePrice:         totalBase.InexactFloat64(),
			TotalSubscriptionPrice: totalSub.InexactFloat64(),
			ShippingFee:            s.shippingFee.InexactFloat64(),
			ShippingWaived:         true,
			SavingsPerDelivery:     savingsPerDelivery.InexactFloat64(),
			AnnualSavings:          annualSavings.InexactFloat64(),
		},
		Schedule: Schedule{
			FrequencyDays:     frequency.Days(),
			DeliveriesPerYear: deliveries,
			HorizonMonths:     s.horizonMonths,
			Dates:             isoDates,
		},
		Comparison: Comparison{
			OneTimeAnnualCost:      oneTimeAnnual.InexactFloat64(),
			SubscriptionAnnualCost: subAnnual.InexactFloat64(),
			AnnualSavings:          oneTimeAnnual.Sub(subAnnual).InexactFloat64(),
		},
		Insights: Insights{
			SavingsAnalogy: SavingsAnalogy(annualSavings),
			BreakEven:      "A economia começa na primeira entrega: o desconto e o frete grátis valem desde o primeiro pedido.",
			Recommendation: messageByFrequency[frequency],
		},
	}, nil
}

func invalidFrequency(frequency enums.FrequencyDays) error {
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid frequency %d: allowed values are 30, 45, 60, 90", frequency.Days())).
		WithDetails(map[string]any{"allowed": []int{30, 45, 60, 90}})
}

func invalidProduct(basePrice decimal.Decimal) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "base price must be positive").
		WithDetails(map[string]any{"basePrice": basePrice.String()})
}
