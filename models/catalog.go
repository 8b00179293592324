package models

// Category identifies the cleaning service type. Each category scales the
// package base price by its multiplier.
type Category string

const (
	CategoryStandard         Category = "standard"
	CategoryGeneral          Category = "general"
	CategoryPostConstruction Category = "post-construction"
	CategoryPostMoving       Category = "post-moving"
	CategoryRegular          Category = "regular"
)

// PackageSize identifies the dwelling-size tier.
type PackageSize string

const (
	PackageSmall  PackageSize = "small"
	PackageMedium PackageSize = "medium"
	PackageLarge  PackageSize = "large"
)

// Frequency is the recurrence cadence for regular-category subscriptions.
// FrequencyNone means no cadence has been chosen yet.
type Frequency string

const (
	FrequencyNone        Frequency = ""
	FrequencyWeekly      Frequency = "weekly"
	FrequencyTwiceWeekly Frequency = "twice-weekly"
	FrequencyBiweekly    Frequency = "biweekly"
	FrequencyMonthly     Frequency = "monthly"
)

// Urgency is an optional rush/off-hours surcharge tier.
type Urgency string

const (
	UrgencyNone     Urgency = ""
	UrgencyUrgent24 Urgency = "urgent-24h"
	UrgencyWeekend  Urgency = "weekend"
	UrgencyEvening  Urgency = "evening"
)

// WindowTier buckets window cleaning by window count, at a flat price per bucket.
type WindowTier string

const (
	WindowTierNone   WindowTier = ""
	WindowTier1To3   WindowTier = "1-3"
	WindowTier4To6   WindowTier = "4-6"
	WindowTier7To10  WindowTier = "7-10"
	WindowTier11Plus WindowTier = "11+"
)

// ExtraID identifies an optional add-on service.
type ExtraID string

type CategoryOption struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	PriceMultiplier float64 `json:"priceMultiplier"`
}

type PackageOption struct {
	Name      string   `json:"name"`
	Subtitle  string   `json:"subtitle"`
	BasePrice int      `json:"basePrice"`
	Features  []string `json:"features"`
}

type FrequencyOption struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
}

type UrgencyOption struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
}

type WindowTierOption struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type ExtraOption struct {
	ID      ExtraID `json:"id"`
	Label   string  `json:"label"`
	Price   int     `json:"price"`
	Tooltip string  `json:"tooltip,omitempty"`
}

// Catalog bundles the static pricing reference data. It is loaded once at
// startup and only ever read; an id missing from it is a programming defect,
// not a runtime condition.
type Catalog struct {
	Categories       map[Category]CategoryOption     `json:"categories"`
	Packages         map[PackageSize]PackageOption   `json:"packages"`
	Frequencies      map[Frequency]FrequencyOption   `json:"frequencies"`
	Urgencies        map[Urgency]UrgencyOption       `json:"urgencies"`
	WindowTiers      map[WindowTier]WindowTierOption `json:"windowTiers"`
	Extras           map[ExtraID]ExtraOption         `json:"extras"`
	ExtraOrder       []ExtraID                       `json:"extraOrder"`
	SuppliesDiscount int                             `json:"suppliesDiscount"`
}
