package engine

import (
	"math"
	"strings"

	"github.com/arvindrk/eatdecider/internal/models"
)

// FeeCalculator prices an item all-in for the current request. Pure and
// deterministic: same item, same constraints, same breakdown.
type FeeCalculator struct {
	cfg models.FeeConfig
}

func NewFeeCalculator(cfg models.FeeConfig) *FeeCalculator {
	return &FeeCalculator{cfg: cfg}
}

// Breakdown computes the fee components for one item. The delivery fee is
// banded by serviceable zone: a supplied location that does not match the
// item's zone pays the far band. All components are non-negative, so
// Total >= BasePrice holds for every valid item.
func (f *FeeCalculator) Breakdown(item models.Item, cons models.Constraints) (models.FeeBreakdown, error) {
	if item.BasePrice < 0 {
		return models.FeeBreakdown{}, &models.InvalidItemError{ItemID: item.ID, Reason: "negative base price"}
	}

	delivery := f.deliveryFee(item, cons)
	platform := roundMinor(item.BasePrice * f.cfg.PlatformFeeRate)
	taxes := roundMinor(item.BasePrice * f.cfg.TaxRate)

	breakdown := models.FeeBreakdown{
		BasePrice:    roundMinor(item.BasePrice),
		PackagingFee: roundMinor(f.cfg.PackagingFee),
		DeliveryFee:  roundMinor(delivery),
		PlatformFee:  platform,
		Taxes:        taxes,
	}
	breakdown.Total = roundMinor(breakdown.BasePrice + breakdown.PackagingFee +
		breakdown.DeliveryFee + breakdown.PlatformFee + breakdown.Taxes)
	return breakdown, nil
}

func (f *FeeCalculator) deliveryFee(item models.Item, cons models.Constraints) float64 {
	if item.BasePrice >= f.cfg.FreeDeliveryThreshold {
		return 0
	}

	fee := f.cfg.BaseDeliveryFee
	if cons.Location != "" && !zoneMatches(cons.Location, item.Zone) {
		fee = f.cfg.FarDeliveryFee
	}

	if item.BasePrice < f.cfg.SmallOrderThreshold {
		fee += f.cfg.SmallOrderFee
	}
	return fee
}

// zoneMatches treats free-text place names loosely: an exact match or a
// containment either way counts as the near band.
func zoneMatches(location, zone string) bool {
	if zone == "" {
		return true
	}
	loc := strings.ToLower(strings.TrimSpace(location))
	z := strings.ToLower(strings.TrimSpace(zone))
	return loc == z || strings.Contains(z, loc) || strings.Contains(loc, z)
}

// roundMinor rounds to the catalog currency's minor unit.
func roundMinor(v float64) float64 {
	return math.Round(v*100) / 100
}
