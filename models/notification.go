package models

// ReservationConfirmationPayload is the task payload handed to the
// confirmation worker after a reservation is persisted.
type ReservationConfirmationPayload struct {
	ReservationID string `json:"reservationId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	TotalPrice    int    `json:"totalPrice"`
	Currency      string `json:"currency"`
}
