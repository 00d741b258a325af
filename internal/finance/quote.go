package finance

import "tourdesk/internal/domain"

// QuoteInput are the operator-controlled fields on the booking-creation form.
type QuoteInput struct {
	MemberIDs     []string            `json:"memberIds"`
	PackagePrice  int64               `json:"packagePrice"`
	DiscountType  domain.DiscountType `json:"discountType"`
	DiscountValue float64             `json:"discountValue"`
}

// Quote holds every derived cost field for a booking being composed.
type Quote struct {
	MemberCount int   `json:"memberCount"`
	NetCost     int64 `json:"netCost"`
	Discount    int64 `json:"discount"`
	TotalCost   int64 `json:"totalCost"`
}

// ComputeQuote runs the whole derivation pipeline in one synchronous call:
// member count, net cost, discount, total. Because every field is derived
// together from the same inputs there is no way to observe a total computed
// from a stale member count. Total is floored at zero.
func ComputeQuote(in QuoteInput) Quote {
	count := len(in.MemberIDs)
	net := in.PackagePrice * int64(count)

	var discount int64
	if in.DiscountValue > 0 {
		if in.DiscountType == domain.DiscountPercentage {
			discount = roundMoney(float64(net) * in.DiscountValue / 100)
		} else {
			discount = roundMoney(in.DiscountValue)
		}
	}

	total := net - discount
	if total < 0 {
		total = 0
	}

	return Quote{
		MemberCount: count,
		NetCost:     net,
		Discount:    discount,
		TotalCost:   total,
	}
}
