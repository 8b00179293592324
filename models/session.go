package models

import "time"

// ConfiguratorSession is the server-side snapshot of one interactive pricing
// session. The quote is recomputed on every mutation and stored alongside the
// selection.
type ConfiguratorSession struct {
	SessionID string    `json:"sessionId"`
	Selection Selection `json:"selection"`
	Quote     Quote     `json:"quote"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SelectionUpdate is a partial mutation of a session's selection. Nil fields
// are left untouched; pointer fields let callers clear a nullable choice by
// sending its zero value explicitly. A preset id, when present, is applied
// first and the remaining fields on top of it.
type SelectionUpdate struct {
	PresetID       *string      `json:"presetId,omitempty"`
	Category       *Category    `json:"category,omitempty"`
	PackageSize    *PackageSize `json:"packageSize,omitempty"`
	Extras         *[]ExtraID   `json:"extras,omitempty"`
	ToggleExtra    *ExtraID     `json:"toggleExtra,omitempty"`
	Frequency      *Frequency   `json:"frequency,omitempty"`
	Urgency        *Urgency     `json:"urgency,omitempty"`
	WindowTier     *WindowTier  `json:"windowTier,omitempty"`
	HasOwnSupplies *bool        `json:"hasOwnSupplies,omitempty"`
}
