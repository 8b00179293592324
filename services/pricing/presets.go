package pricing

import "maidly/models"

// defaultPresets are the canned bundles shown in the preset gallery.
var defaultPresets = []models.PresetPackage{
	{
		ID:          "fresh-start",
		Name:        "Fresh Start",
		Description: "Move-in ready: post-moving cleaning with cabinets, fridge and windows",
		Category:    models.CategoryPostMoving,
		PackageSize: models.PackageMedium,
		Extras:      []models.ExtraID{ExtraCabinetInterior, ExtraFridgeCleaning},
		WindowTier:  models.WindowTier4To6,
		Savings:     400,
		Badge:       "Most popular",
	},
	{
		ID:          "renovation-rescue",
		Name:        "Renovation Rescue",
		Description: "After the builders leave: walls, carpets and every window",
		Category:    models.CategoryPostConstruction,
		PackageSize: models.PackageLarge,
		Extras:      []models.ExtraID{ExtraWallsCleaning, ExtraCarpetCleaning},
		WindowTier:  models.WindowTier7To10,
		Savings:     900,
	},
	{
		ID:          "weekly-shine",
		Name:        "Weekly Shine",
		Description: "A spotless home every week, ironing and laundry included",
		Category:    models.CategoryRegular,
		PackageSize: models.PackageMedium,
		Extras:      []models.ExtraID{ExtraIroning, ExtraLaundry},
		Savings:     250,
		Badge:       "Best value",
	},
	{
		ID:          "deep-clean-day",
		Name:        "Deep Clean Day",
		Description: "General cleaning with oven, fridge and balcony",
		Category:    models.CategoryGeneral,
		PackageSize: models.PackageMedium,
		Extras:      []models.ExtraID{ExtraOvenCleaning, ExtraFridgeCleaning, ExtraBalconyTerrace},
		Savings:     350,
	},
}

// Presets returns the preset gallery entries.
func Presets() []models.PresetPackage {
	return defaultPresets
}

// PresetByID looks up a preset bundle.
func PresetByID(id string) (models.PresetPackage, bool) {
	for _, p := range defaultPresets {
		if p.ID == id {
			return p, true
		}
	}
	return models.PresetPackage{}, false
}

// ApplyPreset overwrites the selection with the preset's configuration: a full
// replace of category, package size, extras and window tier, never a merge.
// Regular-cleaning presets start on the weekly cadence.
func ApplyPreset(sel *models.Selection, preset models.PresetPackage) {
	sel.SetCategory(preset.Category)
	sel.SetPackageSize(preset.PackageSize)
	sel.SetExtras(preset.Extras)
	sel.SetWindowTier(preset.WindowTier)
	if preset.Category == models.CategoryRegular {
		sel.SetFrequency(models.FrequencyWeekly)
	}
}

// AdvertisedPrice computes the regular and discounted display price for a
// preset, independent of any live selection. The regular price is the grand
// total of the preset's fixed configuration; the discounted price subtracts
// the preset's savings.
func AdvertisedPrice(cat *models.Catalog, preset models.PresetPackage) (regular, discounted int) {
	sel := models.NewSelection()
	ApplyPreset(&sel, preset)
	regular = ComputeTotal(cat, sel).GrandTotal
	return regular, regular - preset.Savings
}
