package pricing

// BasketItem is one product line in a pricing request.
type BasketItem struct {
	BasePrice float64 `json:"basePrice"`
	Quantity  int     `json:"quantity"`
}

// ItemPricing is the per-product subscription calculation.
type ItemPricing struct {
	BasePrice         float64 `json:"basePrice"`
	SubscriptionPrice float64 `json:"subscriptionPrice"`
	Quantity          int     `json:"quantity"`
	SavingsPerUnit    float64 `json:"savingsPerUnit"`
	DiscountPercent   float64 `json:"discountPercent"`
}

// Pricing aggregates the basket totals for one delivery.
type Pricing struct {
	TotalBasePrice         float64 `json:"totalBasePrice"`
	TotalSubscriptionPrice float64 `json:"totalSubscriptionPrice"`
	ShippingFee            float64 `json:"shippingFee"`
	ShippingWaived         bool    `json:"shippingWaived"`
	SavingsPerDelivery     float64 `json:"savingsPerDelivery"`
	AnnualSavings          float64 `json:"annualSavings"`
}

// Schedule is the forward delivery calendar.
type Schedule struct {
	FrequencyDays     int      `json:"frequencyDays"`
	DeliveriesPerYear int      `json:"deliveriesPerYear"`
	HorizonMonths     int      `json:"horizonMonths"`
	Dates             []string `json:"dates"`
}

// Comparison contrasts one-time and subscription purchasing over a year.
type Comparison struct {
	OneTimeAnnualCost      float64 `json:"oneTimeAnnualCost"`
	SubscriptionAnnualCost float64 `json:"subscriptionAnnualCost"`
	AnnualSavings          float64 `json:"annualSavings"`
}

// Insights carries the customer-facing framing of the savings.
type Insights struct {
	SavingsAnalogy string `json:"savingsAnalogy"`
	BreakEven      string `json:"breakEven"`
	Recommendation string `json:"recommendation"`
}

// Calculation is the complete output of a basket quote.
type Calculation struct {
	Products   []ItemPricing `json:"products"`
	Frequency  int           `json:"frequency"`
	Pricing    Pricing       `json:"pricing"`
	Schedule   Schedule      `json:"schedule"`
	Comparison Comparison    `json:"comparison"`
	Insights   Insights      `json:"insights"`
}

// FrequencyOption describes one of the four sold intervals for the GET
// side of the pricing endpoint.
type FrequencyOption struct {
	Days            int     `json:"days"`
	DiscountPercent float64 `json:"discountPercent"`
	Label           string  `json:"label"`
	Recommended     bool    `json:"recommended"`
}
