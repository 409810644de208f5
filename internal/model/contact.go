package model

import "time"

// PhoneNumber is one number on a contact.
type PhoneNumber struct {
	Label  string `json:"label"` // "mobile", "work", ...
	Number string `json:"number"`
}

// Contact is a saved person with one or more phone numbers.
type Contact struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Numbers     []PhoneNumber `json:"numbers"`
	ExtraNumber string        `json:"extraNumber"` // alternate number reachable through a call provider
	CreatedAt   time.Time     `json:"createdAt"`
	CalledAt    *time.Time    `json:"calledAt"` // nil = never called
}

// NewContactParams holds parameters for creating a new Contact.
type NewContactParams struct {
	Name        string
	Numbers     []PhoneNumber
	ExtraNumber string
}

// NewContact creates a Contact with generated UUID and timestamps.
func NewContact(params NewContactParams) Contact {
	numbers := params.Numbers
	if numbers == nil {
		numbers = []PhoneNumber{}
	}

	return Contact{
		ID:          GenerateUUID(),
		Name:        params.Name,
		Numbers:     numbers,
		ExtraNumber: params.ExtraNumber,
		CreatedAt:   time.Now(),
		CalledAt:    nil,
	}
}
