package domain

import "time"

type Supplier struct {
	ID           int64
	Code         string // unique, generated when not supplied
	Name         string
	TaxID        string
	Address      string
	Phone        string
	Email        string
	Contact      string
	ProductType  string
	LeadTimeDays int64
	Rating       int64 // 1..5, defaults to 5
	CreatedBy    *int64
	CreatedAt    time.Time
	Active       bool
}
