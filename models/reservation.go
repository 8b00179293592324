package models

import "time"

// ReservationStatus tracks a reservation through its lifecycle.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// ContactDetails are the customer fields collected on the reservation form.
type ContactDetails struct {
	Name    string `bson:"name" json:"name" binding:"required"`
	Email   string `bson:"email" json:"email" binding:"required"`
	Phone   string `bson:"phone" json:"phone" binding:"required"`
	Address string `bson:"address" json:"address" binding:"required"`
}

// ReservationExtra is the priced snapshot of one selected extra, frozen at
// reservation time so later catalog edits cannot change history.
type ReservationExtra struct {
	ID    ExtraID `bson:"id" json:"id"`
	Label string  `bson:"label" json:"label"`
	Price int     `bson:"price" json:"price"`
}

// Reservation persists the configurator snapshot plus contact details.
type Reservation struct {
	ID               string             `bson:"id" json:"id"`
	Contact          ContactDetails     `bson:"contact" json:"contact"`
	PackageTypeLabel string             `bson:"packageTypeLabel" json:"packageTypeLabel"`
	BasePrice        int                `bson:"basePrice" json:"basePrice"`
	Extras           []ReservationExtra `bson:"extras" json:"extras"`
	TotalPrice       int                `bson:"totalPrice" json:"totalPrice"`
	FrequencyLabel   *string            `bson:"frequencyLabel,omitempty" json:"frequencyLabel,omitempty"`
	ReferralCode     string             `bson:"referralCode,omitempty" json:"referralCode,omitempty"`
	// FinalPrice is TotalPrice after any referral discount. Equal to
	// TotalPrice when no code was applied.
	FinalPrice int               `bson:"finalPrice" json:"finalPrice"`
	Selection  Selection         `bson:"selection" json:"selection"`
	Notes      string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Status     ReservationStatus `bson:"status" json:"status"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// ReservationRequest is the payload confirming a configurator session into a
// reservation.
type ReservationRequest struct {
	Contact      ContactDetails `json:"contact" binding:"required"`
	ReferralCode string         `json:"referralCode,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}
