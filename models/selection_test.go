package models

import "testing"

func TestNewSelectionDefaults(t *testing.T) {
	s := NewSelection()

	if s.Category != CategoryStandard {
		t.Fatalf("default category = %q, want %q", s.Category, CategoryStandard)
	}
	if s.PackageSize != PackageMedium {
		t.Fatalf("default package = %q, want %q", s.PackageSize, PackageMedium)
	}
	if len(s.Extras) != 0 {
		t.Fatalf("default extras not empty: %v", s.Extras)
	}
	if s.Frequency != FrequencyNone || s.Urgency != UrgencyNone || s.WindowTier != WindowTierNone {
		t.Fatalf("nullable fields not empty: %+v", s)
	}
	if s.HasOwnSupplies {
		t.Fatalf("hasOwnSupplies should default to false")
	}
}

func TestSetCategoryClearsFrequencyWhenLeavingRegular(t *testing.T) {
	s := NewSelection()
	s.SetCategory(CategoryRegular)
	s.SetFrequency(FrequencyWeekly)

	s.SetCategory(CategoryGeneral)

	if s.Frequency != FrequencyNone {
		t.Fatalf("frequency survived category switch: %q", s.Frequency)
	}
}

func TestSetCategoryKeepsFrequencyOnRegular(t *testing.T) {
	s := NewSelection()
	s.SetCategory(CategoryRegular)
	s.SetFrequency(FrequencyBiweekly)

	s.SetCategory(CategoryRegular)

	if s.Frequency != FrequencyBiweekly {
		t.Fatalf("frequency lost on re-setting regular: %q", s.Frequency)
	}
}

func TestToggleExtra(t *testing.T) {
	s := NewSelection()

	s.ToggleExtra("oven-cleaning")
	if !s.HasExtra("oven-cleaning") {
		t.Fatalf("extra not added by toggle")
	}

	s.ToggleExtra("oven-cleaning")
	if s.HasExtra("oven-cleaning") {
		t.Fatalf("extra not removed by second toggle")
	}
}

func TestSetExtrasReplacesAndDeduplicates(t *testing.T) {
	s := NewSelection()
	s.ToggleExtra("garden")

	s.SetExtras([]ExtraID{"laundry", "ironing", "laundry"})

	if s.HasExtra("garden") {
		t.Fatalf("SetExtras merged instead of replacing")
	}
	if len(s.Extras) != 2 {
		t.Fatalf("duplicates not dropped: %v", s.Extras)
	}
	if s.Extras[0] != "laundry" || s.Extras[1] != "ironing" {
		t.Fatalf("order not preserved: %v", s.Extras)
	}
}
