package pricing

import "maidly/models"

const maxRecommendations = 3

// recommendRule proposes one extra when its condition holds.
type recommendRule struct {
	suggest models.ExtraID
	applies func(models.Selection) bool
}

// Rules fire in order, single pass; no rule feeds another.
var recommendRules = []recommendRule{
	{ExtraGarden, func(s models.Selection) bool { return s.PackageSize == models.PackageLarge }},
	{ExtraBalconyTerrace, func(s models.Selection) bool { return s.PackageSize == models.PackageMedium }},
	{ExtraOvenCleaning, func(s models.Selection) bool { return s.Category == models.CategoryGeneral }},
	{ExtraWallsCleaning, func(s models.Selection) bool { return s.Category == models.CategoryPostConstruction }},
	{ExtraCarpetCleaning, func(s models.Selection) bool { return s.HasExtra(ExtraDog) }},
	{ExtraLaundry, func(s models.Selection) bool { return s.HasExtra(ExtraIroning) }},
}

// Recommend returns up to three extras worth suggesting for the current
// selection, in rule order, never repeating one that is already chosen.
func Recommend(sel models.Selection) []models.ExtraID {
	out := make([]models.ExtraID, 0, maxRecommendations)
	for _, r := range recommendRules {
		if len(out) == maxRecommendations {
			break
		}
		if !r.applies(sel) || sel.HasExtra(r.suggest) {
			continue
		}
		out = append(out, r.suggest)
	}
	return out
}
