package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers the route registrar wires up.
type HandlerBundle struct {
	// Pricing endpoints.
	GetCatalog gin.HandlerFunc
	GetPresets gin.HandlerFunc
	Quote      gin.HandlerFunc

	// Configurator session endpoints.
	InitiateSession    gin.HandlerFunc
	GetSession         gin.HandlerFunc
	UpdateSession      gin.HandlerFunc
	CancelSession      gin.HandlerFunc
	ConfirmReservation gin.HandlerFunc

	// Inquiry endpoints.
	CreateInquiry gin.HandlerFunc

	// Admin endpoints.
	ListReservations        gin.HandlerFunc
	GetReservation          gin.HandlerFunc
	UpdateReservationStatus gin.HandlerFunc
	ListInquiries           gin.HandlerFunc
}
