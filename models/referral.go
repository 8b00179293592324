package models

import "time"

// ReferralCode grants a percentage discount applied on top of the
// configurator's grand total at reservation time. The pricing engine itself
// never sees referral codes.
type ReferralCode struct {
	Code      string     `bson:"code" json:"code"`
	Discount  float64    `bson:"discount" json:"discount"` // fraction, 0..1
	Active    bool       `bson:"active" json:"active"`
	ExpiresAt *time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
}
