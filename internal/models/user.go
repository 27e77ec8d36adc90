package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a person recording transactions in the ledger.
//
// The ledger itself only ever reads users, mutation happens through
// the user API.
type User struct {
	DefaultModel
	Name   string
	Email  string `gorm:"uniqueIndex"`
	Number string // Phone number
}

// BeforeSave trims whitespace from all strings.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
	u.Number = strings.TrimSpace(u.Number)

	return nil
}
