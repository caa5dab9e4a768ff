package pricing

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/KairamCabral/terravik-sub003/pkg/enums"
	pkgerrors "github.com/KairamCabral/terravik-sub003/pkg/errors"
)

var quoteStart = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		ShippingFee:   decimal.RequireFromString("12.90"),
		HorizonMonths: 12,
	})
	require.NoError(t, err)
	return svc
}

func TestSubscriptionPrice45DayTier(t *testing.T) {
	price, err := SubscriptionPrice(decimal.NewFromInt(100), enums.Frequency45)
	require.NoError(t, err)
	require.True(t, price.Equal(decimal.RequireFromString("88.00")), "got %s", price)
}

func TestSubscriptionPriceAlwaysBelowBase(t *testing.T) {
	base := decimal.RequireFromString("89.90")
	previous := decimal.Zero
	for _, frequency := range enums.ValidFrequencies {
		price, err := SubscriptionPrice(base, frequency)
		require.NoError(t, err)
		require.True(t, price.LessThan(base), "frequency %d: %s not below base", frequency, price)

		discount := base.Sub(price)
		// Discounts must not decrease as the interval grows.
		require.True(t, discount.GreaterThanOrEqual(previous), "frequency %d breaks monotonicity", frequency)
		previous = discount
	}
}

func TestSubscriptionPriceRejectsBadFrequency(t *testing.T) {
	_, err := SubscriptionPrice(decimal.NewFromInt(100), enums.FrequencyDays(40))
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
	require.Contains(t, typed.Message(), "30, 45, 60, 90")
}

func TestSubscriptionPriceRejectsNonPositiveBase(t *testing.T) {
	for _, base := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := SubscriptionPrice(base, enums.Frequency30)
		require.Error(t, err, "base %s", base)
	}
}

func TestDeliveriesPerYear(t *testing.T) {
	expected := map[enums.FrequencyDays]int{
		enums.Frequency30: 12,
		enums.Frequency45: 8,
		enums.Frequency60: 6,
		enums.Frequency90: 4,
	}
	for frequency, want := range expected {
		got, err := DeliveriesPerYear(frequency)
		require.NoError(t, err)
		require.Equal(t, want, got, "frequency %d", frequency)
	}

	_, err := DeliveriesPerYear(enums.FrequencyDays(7))
	require.Error(t, err)
}

func TestDeliveryDatesSpacingAndLength(t *testing.T) {
	for _, frequency := range enums.ValidFrequencies {
		dates, err := DeliveryDates(quoteStart, frequency, 12)
		require.NoError(t, err)

		daysPerMonth := 30.44
		wantLen := int(12*daysPerMonth) / frequency.Days()
		require.Len(t, dates, wantLen, "frequency %d", frequency)

		previous := quoteStart
		for _, d := range dates {
			require.Equal(t, previous.AddDate(0, 0, frequency.Days()), d)
			previous = d
		}
	}
}

func TestDeliveryDatesFirstDeliveryAfterStart(t *testing.T) {
	dates, err := DeliveryDates(quoteStart, enums.Frequency45, 12)
	require.NoError(t, err)
	require.Equal(t, quoteStart.AddDate(0, 0, 45), dates[0])
}

func TestSavingsAnalogyTotalOverDomain(t *testing.T) {
	amounts := []string{"-10", "0", "49.99", "50", "149.99", "150", "299.99", "300", "10000"}
	for _, raw := range amounts {
		msg := SavingsAnalogy(decimal.RequireFromString(raw))
		require.NotEmpty(t, msg, "amount %s", raw)
	}
	require.Equal(t, SavingsAnalogy(decimal.NewFromInt(-10)), SavingsAnalogy(decimal.Zero))
	require.Equal(t, savingsAnalogyTop, SavingsAnalogy(decimal.NewFromInt(500)))
}

func TestFrequencyOptions(t *testing.T) {
	options := FrequencyOptions()
	require.Len(t, options, 4)

	recommended := 0
	previous := 0.0
	for _, opt := range options {
		require.GreaterOrEqual(t, opt.DiscountPercent, previous, "discount must not decrease")
		previous = opt.DiscountPercent
		if opt.Recommended {
			recommended++
		}
	}
	require.Equal(t, 1, recommended, "exactly one recommended option")
}

func TestQuoteBasketSingleItem(t *testing.T) {
	svc := newService(t)

	calc, err := svc.QuoteBasket([]BasketItem{{BasePrice: 89.90, Quantity: 1}}, enums.Frequency45, quoteStart)
	require.NoError(t, err)

	require.Equal(t, 89.90, calc.Pricing.TotalBasePrice)
	require.Less(t, calc.Pricing.TotalSubscriptionPrice, calc.Pricing.TotalBasePrice)
	require.Equal(t, 45, calc.Frequency)
	require.Equal(t, 8, calc.Schedule.DeliveriesPerYear)
	require.Len(t, calc.Products, 1)
	require.Equal(t, 12.0, calc.Products[0].DiscountPercent)

	// 89.90 × 0.88 = 79.112, rounded to cents.
	require.Equal(t, 79.11, calc.Products[0].SubscriptionPrice)

	// Savings per delivery include the waived shipping fee.
	require.InDelta(t, 89.90-79.11+12.90, calc.Pricing.SavingsPerDelivery, 1e-9)
	require.InDelta(t, calc.Pricing.SavingsPerDelivery*8, calc.Pricing.AnnualSavings, 1e-9)
	require.InDelta(t, calc.Pricing.AnnualSavings, calc.Comparison.AnnualSavings, 1e-9)
	require.NotEmpty(t, calc.Insights.SavingsAnalogy)
	require.Equal(t, messageByFrequency[enums.Frequency45], calc.Insights.Recommendation)
}

func TestQuoteBasketMultipleQuantities(t *testing.T) {
	svc := newService(t)

	calc, err := svc.QuoteBasket([]BasketItem{
		{BasePrice: 50, Quantity: 2},
		{BasePrice: 30, Quantity: 1},
	}, enums.Frequency30, quoteStart)
	require.NoError(t, err)

	require.Equal(t, 130.0, calc.Pricing.TotalBasePrice)
	// 50 × 0.92 = 46.00 each, 30 × 0.92 = 27.60.
	require.InDelta(t, 46*2+27.6, calc.Pricing.TotalSubscriptionPrice, 1e-9)
}

func TestQuoteBasketRejectsUnsupportedFrequency(t *testing.T) {
	svc := newService(t)

	_, err := svc.QuoteBasket([]BasketItem{{BasePrice: 10, Quantity: 1}}, enums.FrequencyDays(40), quoteStart)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestQuoteBasketRejectsNonPositivePrice(t *testing.T) {
	svc := newService(t)

	_, err := svc.QuoteBasket([]BasketItem{{BasePrice: 0, Quantity: 1}}, enums.Frequency30, quoteStart)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestQuoteBasketRejectsNonPositiveQuantity(t *testing.T) {
	svc := newService(t)

	_, err := svc.QuoteBasket([]BasketItem{{BasePrice: 10, Quantity: 0}}, enums.Frequency30, quoteStart)
	require.Error(t, err)
}

func TestQuoteBasketRejectsEmptyBasket(t *testing.T) {
	svc := newService(t)

	_, err := svc.QuoteBasket(nil, enums.Frequency30, quoteStart)
	require.Error(t, err)
}

func TestQuoteBasketIdempotent(t *testing.T) {
	svc := newService(t)

	items := []BasketItem{{BasePrice: 89.90, Quantity: 1}, {BasePrice: 45.50, Quantity: 3}}
	first, err := svc.QuoteBasket(items, enums.Frequency60, quoteStart)
	require.NoError(t, err)
	second, err := svc.QuoteBasket(items, enums.Frequency60, quoteStart)
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical input must produce identical output")
	}
}
