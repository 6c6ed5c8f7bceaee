package domain

import "time"

// ClientCategoryRegular is the default commercial category for new clients.
const ClientCategoryRegular = "REGULAR"

type Client struct {
	ID             int64
	Code           string // unique, generated when not supplied
	Name           string
	DocumentType   string
	DocumentNumber string
	Address        string
	Phone          string
	Email          string
	CreditLimit    float64
	Balance        float64
	Category       string
	CreatedBy      *int64
	CreatedAt      time.Time
	Active         bool
}
