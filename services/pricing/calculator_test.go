package pricing

import (
	"math"
	"testing"

	"maidly/models"
)

func TestComputeTotalBarePackages(t *testing.T) {
	cat := DefaultCatalog()

	for c, category := range cat.Categories {
		for p, pkg := range cat.Packages {
			sel := models.NewSelection()
			sel.SetCategory(c)
			sel.SetPackageSize(p)

			got := ComputeTotal(cat, sel)
			want := int(math.Round(float64(pkg.BasePrice) * category.PriceMultiplier))
			if got.GrandTotal != want {
				t.Errorf("%s/%s: grand total = %d, want %d", c, p, got.GrandTotal, want)
			}
			if got.BasePrice != want {
				t.Errorf("%s/%s: base price = %d, want %d", c, p, got.BasePrice, want)
			}
			if got.ExtrasTotal != 0 || got.TotalSavings != 0 || got.TotalSurcharges != 0 {
				t.Errorf("%s/%s: unexpected extras/savings/surcharges: %+v", c, p, got)
			}
		}
	}
}

func TestComputeTotalDefaultSelection(t *testing.T) {
	cat := DefaultCatalog()

	got := ComputeTotal(cat, models.NewSelection())
	if got.GrandTotal != 2890 {
		t.Fatalf("medium standard = %d, want 2890", got.GrandTotal)
	}
}

func TestComputeTotalRegularWeekly(t *testing.T) {
	cat := DefaultCatalog()

	sel := models.NewSelection()
	sel.SetPackageSize(models.PackageSmall)
	sel.SetCategory(models.CategoryRegular)
	sel.SetFrequency(models.FrequencyWeekly)

	// 1890 * 0.85 * (1 - 0.15) = 1365.825, rounded once at the end.
	got := ComputeTotal(cat, sel)
	if got.GrandTotal != 1366 {
		t.Fatalf("small regular weekly = %d, want 1366", got.GrandTotal)
	}
}

func TestComputeTotalUrgencyAndExtras(t *testing.T) {
	cat := DefaultCatalog()

	sel := models.NewSelection()
	sel.SetPackageSize(models.PackageLarge)
	sel.SetCategory(models.CategoryGeneral)
	sel.SetUrgency(models.UrgencyWeekend)
	sel.SetExtras([]models.ExtraID{ExtraOvenCleaning})
	sel.SetWindowTier(models.WindowTier4To6)

	// adjusted = 4990 * 1.5 * 1.2 = 8982; extras = 350 + 350 = 700.
	got := ComputeTotal(cat, sel)
	if got.BasePrice != 8982 {
		t.Errorf("base price = %d, want 8982", got.BasePrice)
	}
	if got.ExtrasTotal != 700 {
		t.Errorf("extras total = %d, want 700", got.ExtrasTotal)
	}
	if got.TotalSurcharges != 1497 {
		t.Errorf("surcharges = %d, want 1497", got.TotalSurcharges)
	}
	if got.GrandTotal != 9682 {
		t.Errorf("grand total = %d, want 9682", got.GrandTotal)
	}
}

func TestComputeTotalOwnSuppliesIsFlat(t *testing.T) {
	cat := DefaultCatalog()

	for c := range cat.Categories {
		sel := models.NewSelection()
		sel.SetCategory(c)
		without := ComputeTotal(cat, sel)

		sel.SetHasOwnSupplies(true)
		with := ComputeTotal(cat, sel)

		if without.GrandTotal-with.GrandTotal != SuppliesDiscount {
			t.Errorf("%s: supplies discount = %d, want %d", c, without.GrandTotal-with.GrandTotal, SuppliesDiscount)
		}
		if with.TotalSavings != SuppliesDiscount {
			t.Errorf("%s: savings = %d, want %d", c, with.TotalSavings, SuppliesDiscount)
		}
	}
}

func TestComputeTotalSavingsAgainstUndiscountedBase(t *testing.T) {
	cat := DefaultCatalog()

	sel := models.NewSelection()
	sel.SetCategory(models.CategoryRegular)
	sel.SetFrequency(models.FrequencyWeekly)
	sel.SetUrgency(models.UrgencyWeekend)
	sel.SetHasOwnSupplies(true)

	// Frequency savings are reported against 2890*0.85 = 2456.5, not the
	// urgency-adjusted figure: 2456.5 * 0.15 = 368.475 → 368, plus the flat 200.
	got := ComputeTotal(cat, sel)
	if got.TotalSavings != 568 {
		t.Errorf("savings = %d, want 568", got.TotalSavings)
	}

	// Surcharge is the amount urgency added on the frequency-adjusted base:
	// 2456.5 * 0.85 * 0.2 = 417.605 → 418.
	if got.TotalSurcharges != 418 {
		t.Errorf("surcharges = %d, want 418", got.TotalSurcharges)
	}

	// Grand total rounds once: 2088.025 * 1.2 - 200 = 2305.63 → 2306.
	if got.GrandTotal != 2306 {
		t.Errorf("grand total = %d, want 2306", got.GrandTotal)
	}
}

func TestComputeTotalFrequencyIgnoredOffRegular(t *testing.T) {
	cat := DefaultCatalog()

	// Built directly, bypassing the setters, to simulate inconsistent state
	// reaching the calculator. The discount must not apply.
	sel := models.Selection{
		Category:    models.CategoryStandard,
		PackageSize: models.PackageMedium,
		Frequency:   models.FrequencyWeekly,
	}

	got := ComputeTotal(cat, sel)
	if got.GrandTotal != 2890 {
		t.Fatalf("grand total = %d, want 2890 (discount must not apply)", got.GrandTotal)
	}
	if got.TotalSavings != 0 {
		t.Fatalf("savings = %d, want 0", got.TotalSavings)
	}
}

func TestComputeTotalSkipsUnknownExtra(t *testing.T) {
	cat := DefaultCatalog()

	sel := models.NewSelection()
	sel.SetExtras([]models.ExtraID{ExtraOvenCleaning, "disco-ball-polish"})

	got := ComputeTotal(cat, sel)
	if got.ExtrasTotal != 350 {
		t.Fatalf("extras total = %d, want 350 (unknown id must contribute nothing)", got.ExtrasTotal)
	}
}

func TestValidateSelection(t *testing.T) {
	cat := DefaultCatalog()

	sel := models.NewSelection()
	if err := ValidateSelection(cat, sel); err != nil {
		t.Fatalf("default selection rejected: %v", err)
	}

	sel.SetExtras([]models.ExtraID{"disco-ball-polish"})
	if err := ValidateSelection(cat, sel); err == nil {
		t.Fatalf("unknown extra accepted")
	}

	sel = models.Selection{Category: "imaginary", PackageSize: models.PackageMedium}
	if err := ValidateSelection(cat, sel); err == nil {
		t.Fatalf("unknown category accepted")
	}
}
