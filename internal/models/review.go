package models

import "time"

// Review is a public testimonial. Contact is kept for moderation follow-up and
// must never be serialized to clients.
type Review struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Profession string    `bson:"profession,omitempty" json:"profession,omitempty"`
	Comment    string    `bson:"comment" json:"comment"`
	Contact    string    `bson:"contact,omitempty" json:"-"`
	Rating     int       `bson:"rating" json:"rating"`
	Approved   bool      `bson:"approved" json:"approved"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
