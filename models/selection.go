package models

// Selection holds the configurator's current choices. It is mutated only
// through the setters below so the cross-field rules always hold. Set
// semantics apply to Extras: an id is either present or absent.
type Selection struct {
	Category       Category    `json:"category"`
	PackageSize    PackageSize `json:"packageSize"`
	Extras         []ExtraID   `json:"extras"`
	Frequency      Frequency   `json:"frequency"`
	Urgency        Urgency     `json:"urgency"`
	WindowTier     WindowTier  `json:"windowTier"`
	HasOwnSupplies bool        `json:"hasOwnSupplies"`
}

// NewSelection returns the configurator defaults: standard cleaning of a
// medium dwelling, nothing else chosen.
func NewSelection() Selection {
	return Selection{
		Category:    CategoryStandard,
		PackageSize: PackageMedium,
		Extras:      []ExtraID{},
	}
}

// SetCategory switches the service type. Moving away from regular cleaning
// clears the frequency, so a stale cadence discount never survives the switch.
func (s *Selection) SetCategory(c Category) {
	s.Category = c
	if c != CategoryRegular {
		s.Frequency = FrequencyNone
	}
}

func (s *Selection) SetPackageSize(p PackageSize) {
	s.PackageSize = p
}

// SetExtras replaces the whole extras set, dropping duplicates and keeping
// first-seen order.
func (s *Selection) SetExtras(ids []ExtraID) {
	seen := make(map[ExtraID]struct{}, len(ids))
	out := make([]ExtraID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	s.Extras = out
}

// ToggleExtra adds the id if absent, removes it if present.
func (s *Selection) ToggleExtra(id ExtraID) {
	for i, e := range s.Extras {
		if e == id {
			s.Extras = append(s.Extras[:i], s.Extras[i+1:]...)
			return
		}
	}
	s.Extras = append(s.Extras, id)
}

func (s *Selection) SetFrequency(f Frequency) {
	s.Frequency = f
}

func (s *Selection) SetUrgency(u Urgency) {
	s.Urgency = u
}

func (s *Selection) SetWindowTier(w WindowTier) {
	s.WindowTier = w
}

func (s *Selection) SetHasOwnSupplies(v bool) {
	s.HasOwnSupplies = v
}

// HasExtra reports whether the id is currently selected.
func (s *Selection) HasExtra(id ExtraID) bool {
	for _, e := range s.Extras {
		if e == id {
			return true
		}
	}
	return false
}
