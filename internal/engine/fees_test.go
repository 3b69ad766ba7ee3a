package engine

import (
	"errors"
	"testing"

	"github.com/arvindrk/eatdecider/internal/models"
)

func testFeeConfig() models.FeeConfig {
	return models.FeeConfig{
		Currency:              "₹",
		PackagingFee:          5.0,
		BaseDeliveryFee:       20.0,
		FarDeliveryFee:        35.0,
		FreeDeliveryThreshold: 500.0,
		SmallOrderThreshold:   100.0,
		SmallOrderFee:         15.0,
		PlatformFeeRate:       0.04,
		TaxRate:               0.05,
	}
}

func TestBreakdownComponents(t *testing.T) {
	calc := NewFeeCalculator(testFeeConfig())
	item := models.Item{ID: "x", BasePrice: 150, Zone: "Indiranagar"}

	fees, err := calc.Breakdown(item, models.Constraints{Budget: 300})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fees.PackagingFee != 5 || fees.DeliveryFee != 20 {
		t.Errorf("unexpected flat fees: %+v", fees)
	}
	if fees.PlatformFee != 6 || fees.Taxes != 7.5 {
		t.Errorf("unexpected percentage fees: %+v", fees)
	}
	if fees.Total != 188.5 {
		t.Errorf("total = %v, want 188.5", fees.Total)
	}
}

func TestBreakdownInvariants(t *testing.T) {
	calc := NewFeeCalculator(testFeeConfig())
	items := []models.Item{
		{ID: "a", BasePrice: 0},
		{ID: "b", BasePrice: 49.99},
		{ID: "c", BasePrice: 150},
		{ID: "d", BasePrice: 499.99},
		{ID: "e", BasePrice: 750},
	}
	for _, item := range items {
		fees, err := calc.Breakdown(item, models.Constraints{Budget: 1000})
		if err != nil {
			t.Fatalf("item %s: %v", item.ID, err)
		}
		if fees.Total < fees.BasePrice {
			t.Errorf("item %s: total %v < base %v", item.ID, fees.Total, fees.BasePrice)
		}
		for name, v := range map[string]float64{
			"packaging": fees.PackagingFee,
			"delivery":  fees.DeliveryFee,
			"platform":  fees.PlatformFee,
			"taxes":     fees.Taxes,
		} {
			if v < 0 {
				t.Errorf("item %s: negative %s fee %v", item.ID, name, v)
			}
		}
	}
}

func TestBreakdownNegativeBasePrice(t *testing.T) {
	calc := NewFeeCalculator(testFeeConfig())
	_, err := calc.Breakdown(models.Item{ID: "bad", BasePrice: -1}, models.Constraints{Budget: 100})

	var invalid *models.InvalidItemError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidItemError, got %v", err)
	}
}

func TestDeliveryFeeBands(t *testing.T) {
	calc := NewFeeCalculator(testFeeConfig())

	tests := []struct {
		name     string
		item     models.Item
		cons     models.Constraints
		delivery float64
	}{
		{
			name:     "free above threshold",
			item:     models.Item{ID: "a", BasePrice: 600, Zone: "Indiranagar"},
			cons:     models.Constraints{Budget: 1000},
			delivery: 0,
		},
		{
			name:     "small order surcharge",
			item:     models.Item{ID: "b", BasePrice: 80, Zone: "Indiranagar"},
			cons:     models.Constraints{Budget: 1000},
			delivery: 35, // base 20 + small order 15
		},
		{
			name:     "far band on unmatched location",
			item:     models.Item{ID: "c", BasePrice: 200, Zone: "Whitefield"},
			cons:     models.Constraints{Budget: 1000, Location: "Jayanagar"},
			delivery: 35,
		},
		{
			name:     "near band on matching location",
			item:     models.Item{ID: "d", BasePrice: 200, Zone: "Whitefield"},
			cons:     models.Constraints{Budget: 1000, Location: "whitefield"},
			delivery: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fees, err := calc.Breakdown(tt.item, tt.cons)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fees.DeliveryFee != tt.delivery {
				t.Errorf("delivery fee = %v, want %v", fees.DeliveryFee, tt.delivery)
			}
		})
	}
}
