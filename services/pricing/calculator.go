package pricing

import (
	"fmt"
	"math"

	"maidly/models"
)

// ComputeTotal derives the full price breakdown for a selection. It is a pure
// function over the catalog and the selection.
//
// The order of operations is fixed: category multiplier, then frequency
// discount, then urgency multiplier, then the flat supplies discount and the
// extras sum. The modifiers compose multiplicatively in that order; swapping
// frequency and urgency changes results. Rounding happens exactly once, on
// the grand total.
//
// Unknown ids contribute nothing rather than aborting a purchase flow; use
// ValidateSelection to reject them at the boundary.
func ComputeTotal(cat *models.Catalog, sel models.Selection) models.PriceBreakdown {
	pkg := cat.Packages[sel.PackageSize]
	category := cat.Categories[sel.Category]

	categoryBase := float64(pkg.BasePrice) * category.PriceMultiplier
	adjusted := categoryBase

	// The cadence discount only ever applies to regular cleaning. The
	// selection setters already clear a stale frequency on category switch;
	// re-check here so a bad caller cannot smuggle in an unintended discount.
	var frequencySavings float64
	if sel.Category == models.CategoryRegular && sel.Frequency != models.FrequencyNone {
		if freq, ok := cat.Frequencies[sel.Frequency]; ok {
			adjusted *= 1 - freq.Discount
			// Reported against the undiscounted category base, not the
			// urgency-adjusted figure.
			frequencySavings = categoryBase * freq.Discount
		}
	}

	var surcharge float64
	if sel.Urgency != models.UrgencyNone {
		if urg, ok := cat.Urgencies[sel.Urgency]; ok {
			surcharge = adjusted * (urg.Multiplier - 1)
			adjusted *= urg.Multiplier
		}
	}

	suppliesDiscount := 0
	if sel.HasOwnSupplies {
		suppliesDiscount = cat.SuppliesDiscount
	}

	extrasTotal := 0
	for _, id := range sel.Extras {
		if extra, ok := cat.Extras[id]; ok {
			extrasTotal += extra.Price
		}
	}
	if sel.WindowTier != models.WindowTierNone {
		if tier, ok := cat.WindowTiers[sel.WindowTier]; ok {
			extrasTotal += tier.Price
		}
	}

	// Sub-amounts round independently for display, so they sum approximately,
	// not exactly, to the grand total. The supplies discount is flat and the
	// total is not clamped when it would go negative.
	return models.PriceBreakdown{
		BasePrice:       int(math.Round(adjusted)),
		ExtrasTotal:     extrasTotal,
		TotalSavings:    suppliesDiscount + int(math.Round(frequencySavings)),
		TotalSurcharges: int(math.Round(surcharge)),
		GrandTotal:      int(math.Round(adjusted + float64(extrasTotal) - float64(suppliesDiscount))),
	}
}

// ValidateSelection reports the first id in the selection that is not part of
// the catalog. A non-nil result indicates a programming error in the caller,
// not user input to recover from.
func ValidateSelection(cat *models.Catalog, sel models.Selection) error {
	if _, ok := cat.Categories[sel.Category]; !ok {
		return fmt.Errorf("unknown category %q", sel.Category)
	}
	if _, ok := cat.Packages[sel.PackageSize]; !ok {
		return fmt.Errorf("unknown package size %q", sel.PackageSize)
	}
	if sel.Frequency != models.FrequencyNone {
		if _, ok := cat.Frequencies[sel.Frequency]; !ok {
			return fmt.Errorf("unknown frequency %q", sel.Frequency)
		}
	}
	if sel.Urgency != models.UrgencyNone {
		if _, ok := cat.Urgencies[sel.Urgency]; !ok {
			return fmt.Errorf("unknown urgency %q", sel.Urgency)
		}
	}
	if sel.WindowTier != models.WindowTierNone {
		if _, ok := cat.WindowTiers[sel.WindowTier]; !ok {
			return fmt.Errorf("unknown window tier %q", sel.WindowTier)
		}
	}
	for _, id := range sel.Extras {
		if _, ok := cat.Extras[id]; !ok {
			return fmt.Errorf("unknown extra %q", id)
		}
	}
	return nil
}
