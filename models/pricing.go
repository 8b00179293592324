package models

// PriceBreakdown is the result of a full price computation. All amounts are
// integer currency units. The grand total is rounded once, at the very end;
// the reported sub-amounts round independently and therefore sum only
// approximately to the total.
type PriceBreakdown struct {
	// BasePrice is the package base after the category multiplier, any
	// frequency discount and any urgency surcharge, rounded.
	BasePrice int `json:"basePrice"`
	// ExtrasTotal is the sum of selected extras plus the window tier.
	ExtrasTotal int `json:"extrasTotal"`
	// TotalSavings is the supplies discount plus the frequency discount
	// amount, in currency units.
	TotalSavings int `json:"totalSavings"`
	// TotalSurcharges is the amount the urgency tier added.
	TotalSurcharges int `json:"totalSurcharges"`
	GrandTotal      int `json:"grandTotal"`
}

// Quote pairs a price breakdown with the completeness gate and upsell
// suggestions, ready for the summary bar to display.
type Quote struct {
	Breakdown       PriceBreakdown `json:"breakdown"`
	IsComplete      bool           `json:"isComplete"`
	CompletionHint  string         `json:"completionHint,omitempty"`
	Recommendations []ExtraID      `json:"recommendations"`
	CategoryLabel   string         `json:"categoryLabel"`
	PackageLabel    string         `json:"packageLabel"`
	Currency        string         `json:"currency"`
}
