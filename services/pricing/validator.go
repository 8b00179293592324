package pricing

import "maidly/models"

// IsComplete reports whether the selection is sufficient to proceed to
// reservation. Regular cleaning needs a cadence; every other combination is
// complete — extras, urgency and windows are always optional.
func IsComplete(sel models.Selection) bool {
	return !(sel.Category == models.CategoryRegular && sel.Frequency == models.FrequencyNone)
}

// CompletionHint returns the corrective hint to surface next to the disabled
// reserve button, or "" when the selection is complete.
func CompletionHint(sel models.Selection) string {
	if IsComplete(sel) {
		return ""
	}
	return "Select a cleaning frequency to continue"
}
