package pricing

import "maidly/models"

// Extra ids referenced across the catalog, the recommendation rules and the
// preset bundles.
const (
	ExtraOvenCleaning    models.ExtraID = "oven-cleaning"
	ExtraFridgeCleaning  models.ExtraID = "fridge-cleaning"
	ExtraCabinetInterior models.ExtraID = "cabinet-interior"
	ExtraGarden          models.ExtraID = "garden"
	ExtraBalconyTerrace  models.ExtraID = "balcony-terrace"
	ExtraWallsCleaning   models.ExtraID = "walls-cleaning"
	ExtraCarpetCleaning  models.ExtraID = "carpet-cleaning"
	ExtraDog             models.ExtraID = "dog"
	ExtraIroning         models.ExtraID = "ironing"
	ExtraLaundry         models.ExtraID = "laundry"
)

// SuppliesDiscount is the flat deduction when the customer provides their own
// cleaning supplies.
const SuppliesDiscount = 200

// DefaultCatalog builds the static pricing reference data. Called once at
// startup; the result is shared read-only afterwards.
func DefaultCatalog() *models.Catalog {
	return &models.Catalog{
		Categories: map[models.Category]models.CategoryOption{
			models.CategoryStandard: {
				Name:            "Standard Cleaning",
				Description:     "Routine cleaning of all living areas, kitchen and bathroom",
				PriceMultiplier: 1.0,
			},
			models.CategoryGeneral: {
				Name:            "General Cleaning",
				Description:     "Thorough top-to-bottom cleaning, including hard-to-reach spots",
				PriceMultiplier: 1.5,
			},
			models.CategoryPostConstruction: {
				Name:            "Post-Construction Cleaning",
				Description:     "Removal of construction dust, debris and residue after renovation",
				PriceMultiplier: 2.0,
			},
			models.CategoryPostMoving: {
				Name:            "Post-Moving Cleaning",
				Description:     "Full cleanup before moving in or after moving out",
				PriceMultiplier: 1.7,
			},
			models.CategoryRegular: {
				Name:            "Regular Cleaning",
				Description:     "Recurring visits on a schedule, at a subscription discount",
				PriceMultiplier: 0.85,
			},
		},
		Packages: map[models.PackageSize]models.PackageOption{
			models.PackageSmall: {
				Name:      "Small",
				Subtitle:  "Up to 50 m²",
				BasePrice: 1890,
				Features:  []string{"1 room", "Kitchen", "Bathroom", "Hallway"},
			},
			models.PackageMedium: {
				Name:      "Medium",
				Subtitle:  "50–90 m²",
				BasePrice: 2890,
				Features:  []string{"2–3 rooms", "Kitchen", "Bathroom", "Hallway", "Balcony wipe-down"},
			},
			models.PackageLarge: {
				Name:      "Large",
				Subtitle:  "90–150 m²",
				BasePrice: 4990,
				Features:  []string{"4+ rooms", "Kitchen", "2 bathrooms", "Hallway", "Balcony wipe-down", "Utility room"},
			},
		},
		Frequencies: map[models.Frequency]models.FrequencyOption{
			models.FrequencyWeekly: {
				Name:        "Weekly",
				Description: "Every week, same day",
				Discount:    0.15,
			},
			models.FrequencyTwiceWeekly: {
				Name:        "Twice a week",
				Description: "Two visits per week",
				Discount:    0.20,
			},
			models.FrequencyBiweekly: {
				Name:        "Every two weeks",
				Description: "One visit every other week",
				Discount:    0.10,
			},
			models.FrequencyMonthly: {
				Name:        "Monthly",
				Description: "One visit per month",
				Discount:    0.05,
			},
		},
		Urgencies: map[models.Urgency]models.UrgencyOption{
			models.UrgencyUrgent24: {
				Name:        "Within 24 hours",
				Description: "Team arrives within one day",
				Multiplier:  1.5,
			},
			models.UrgencyWeekend: {
				Name:        "Weekend",
				Description: "Saturday or Sunday visit",
				Multiplier:  1.2,
			},
			models.UrgencyEvening: {
				Name:        "Evening",
				Description: "Visit after 18:00",
				Multiplier:  1.15,
			},
		},
		WindowTiers: map[models.WindowTier]models.WindowTierOption{
			models.WindowTier1To3:   {Name: "1–3 windows", Price: 200},
			models.WindowTier4To6:   {Name: "4–6 windows", Price: 350},
			models.WindowTier7To10:  {Name: "7–10 windows", Price: 550},
			models.WindowTier11Plus: {Name: "11+ windows", Price: 800},
		},
		Extras: map[models.ExtraID]models.ExtraOption{
			ExtraOvenCleaning: {
				ID: ExtraOvenCleaning, Label: "Oven cleaning", Price: 350,
				Tooltip: "Inside and out, including racks",
			},
			ExtraFridgeCleaning: {
				ID: ExtraFridgeCleaning, Label: "Fridge cleaning", Price: 250,
				Tooltip: "Defrosting not included",
			},
			ExtraCabinetInterior: {
				ID: ExtraCabinetInterior, Label: "Inside cabinets", Price: 300,
				Tooltip: "Emptied shelves are wiped and restocked",
			},
			ExtraGarden: {
				ID: ExtraGarden, Label: "Garden tidy-up", Price: 600,
			},
			ExtraBalconyTerrace: {
				ID: ExtraBalconyTerrace, Label: "Balcony / terrace", Price: 300,
			},
			ExtraWallsCleaning: {
				ID: ExtraWallsCleaning, Label: "Walls cleaning", Price: 450,
				Tooltip: "Washable surfaces only",
			},
			ExtraCarpetCleaning: {
				ID: ExtraCarpetCleaning, Label: "Carpet cleaning", Price: 400,
			},
			ExtraDog: {
				ID: ExtraDog, Label: "Pet hair removal", Price: 150,
				Tooltip: "For homes with dogs or cats",
			},
			ExtraIroning: {
				ID: ExtraIroning, Label: "Ironing", Price: 300,
			},
			ExtraLaundry: {
				ID: ExtraLaundry, Label: "Laundry", Price: 250,
			},
		},
		ExtraOrder: []models.ExtraID{
			ExtraOvenCleaning,
			ExtraFridgeCleaning,
			ExtraCabinetInterior,
			ExtraGarden,
			ExtraBalconyTerrace,
			ExtraWallsCleaning,
			ExtraCarpetCleaning,
			ExtraDog,
			ExtraIroning,
			ExtraLaundry,
		},
		SuppliesDiscount: SuppliesDiscount,
	}
}
