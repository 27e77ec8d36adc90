package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category represents a category of transactions, e.g. "Groceries".
type Category struct {
	DefaultModel
	Name        string `gorm:"uniqueIndex"`
	Description string
}

// BeforeSave trims whitespace from all strings.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}
