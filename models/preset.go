package models

// PresetPackage is a canned configurator bundle shown in the preset gallery.
// Applying one overwrites the live selection wholesale.
type PresetPackage struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	PackageSize PackageSize `json:"packageSize"`
	Extras      []ExtraID   `json:"extras"`
	WindowTier  WindowTier  `json:"windowTier,omitempty"`
	// Savings is subtracted from the naively summed total to produce the
	// advertised discounted price.
	Savings int    `json:"savings"`
	Badge   string `json:"badge,omitempty"`
}

// PresetOffer is a preset plus its advertised pricing, for the gallery.
type PresetOffer struct {
	PresetPackage
	RegularPrice    int `json:"regularPrice"`
	DiscountedPrice int `json:"discountedPrice"`
}
