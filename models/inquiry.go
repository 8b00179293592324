package models

import "time"

// Inquiry is a free-form contact message from the website.
type Inquiry struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	Email     string    `bson:"email" json:"email" binding:"required"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string    `bson:"message" json:"message" binding:"required"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
