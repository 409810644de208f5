package model

import (
	"strings"
	"time"
)

// Store holds all contacts.
type Store struct {
	Contacts []Contact `json:"contacts"`
}

// NewStore creates an empty Store with initialized slices.
func NewStore() *Store {
	return &Store{
		Contacts: []Contact{},
	}
}

// AddContact appends a contact.
func (s *Store) AddContact(c Contact) {
	s.Contacts = append(s.Contacts, c)
}

// GetContactByID finds a contact by ID, returns nil if not found.
func (s *Store) GetContactByID(id string) *Contact {
	for i := range s.Contacts {
		if s.Contacts[i].ID == id {
			return &s.Contacts[i]
		}
	}
	return nil
}

// GetContactByNumber finds the first contact holding number. Numbers are
// compared on their digits only.
func (s *Store) GetContactByNumber(number string) *Contact {
	want := digits(number)
	if want == "" {
		return nil
	}
	for i := range s.Contacts {
		for _, n := range s.Contacts[i].Numbers {
			if digits(n.Number) == want {
				return &s.Contacts[i]
			}
		}
	}
	return nil
}

// AddNumber adds a number to an existing contact.
// Returns false if the contact doesn't exist or already has the number.
func (s *Store) AddNumber(contactID string, number PhoneNumber) bool {
	c := s.GetContactByID(contactID)
	if c == nil {
		return false
	}
	for _, n := range c.Numbers {
		if digits(n.Number) == digits(number.Number) {
			return false
		}
	}
	c.Numbers = append(c.Numbers, number)
	return true
}

// MarkCalled records that number was dialed now.
// Returns false if no contact has that number.
func (s *Store) MarkCalled(number string, at time.Time) bool {
	c := s.GetContactByNumber(number)
	if c == nil {
		return false
	}
	c.CalledAt = &at
	return true
}

// ImportMerge adds contacts whose numbers are all unknown to the store.
// Returns the number added and skipped.
func (s *Store) ImportMerge(contacts []Contact) (added, skipped int) {
	for _, c := range contacts {
		duplicate := false
		for _, n := range c.Numbers {
			if s.GetContactByNumber(n.Number) != nil {
				duplicate = true
				break
			}
		}
		if duplicate {
			skipped++
			continue
		}
		s.AddContact(c)
		added++
	}
	return added, skipped
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
