package finance

import (
	"testing"

	"tourdesk/internal/domain"
)

func TestComputeQuotePercentageDiscount(t *testing.T) {
	got := ComputeQuote(QuoteInput{
		MemberIDs:     []string{"m1", "m2", "m3"},
		PackagePrice:  5000,
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 10,
	})

	want := Quote{MemberCount: 3, NetCost: 15000, Discount: 1500, TotalCost: 13500}
	if got != want {
		t.Fatalf("ComputeQuote = %+v, want %+v", got, want)
	}
}

func TestComputeQuoteFlatDiscount(t *testing.T) {
	got := ComputeQuote(QuoteInput{
		MemberIDs:     []string{"m1", "m2"},
		PackagePrice:  8000,
		DiscountType:  domain.DiscountAmount,
		DiscountValue: 2500,
	})

	want := Quote{MemberCount: 2, NetCost: 16000, Discount: 2500, TotalCost: 13500}
	if got != want {
		t.Fatalf("ComputeQuote = %+v, want %+v", got, want)
	}
}

func TestComputeQuoteTotalFloorsAtZero(t *testing.T) {
	got := ComputeQuote(QuoteInput{
		MemberIDs:     []string{"m1"},
		PackagePrice:  1000,
		DiscountType:  domain.DiscountAmount,
		DiscountValue: 5000,
	})
	if got.TotalCost != 0 {
		t.Fatalf("TotalCost = %d, want 0", got.TotalCost)
	}
}

func TestComputeQuoteNoMembers(t *testing.T) {
	got := ComputeQuote(QuoteInput{PackagePrice: 5000})
	want := Quote{}
	if got != want {
		t.Fatalf("ComputeQuote with no members = %+v, want zero value", got)
	}
}

// Every derived field must reflect the same inputs after any single change;
// re-running the pipeline with a changed member list updates the total too.
func TestComputeQuoteRecomputesEverything(t *testing.T) {
	in := QuoteInput{
		MemberIDs:     []string{"m1", "m2", "m3"},
		PackagePrice:  5000,
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 10,
	}
	first := ComputeQuote(in)

	in.MemberIDs = in.MemberIDs[:1]
	second := ComputeQuote(in)

	if second.MemberCount != 1 || second.NetCost != 5000 ||
		second.Discount != 500 || second.TotalCost != 4500 {
		t.Fatalf("stale derivation after input change: %+v (was %+v)", second, first)
	}
}
