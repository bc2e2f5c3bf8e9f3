package models

import "gorm.io/gorm"

// ContactSubmission stores a message sent through the contact form
type ContactSubmission struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Message   string `json:"message" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false"`
}

// NewsletterSubscription stores a captured newsletter email
type NewsletterSubscription struct {
	gorm.Model
	Email     string `json:"email" gorm:"unique;not null"`
	IsDeleted bool   `gorm:"default:false"`
}
