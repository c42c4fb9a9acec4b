// Package domain defines the account records that carry a detected timezone
package domain

import "time"

// Account is a stored customer record; its address fields drive timezone detection
type Account struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	City      string    `db:"city" json:"city,omitempty"`
	State     string    `db:"state" json:"state,omitempty"`
	Country   string    `db:"country" json:"country,omitempty"`
	Zip       string    `db:"zip" json:"zip,omitempty"`
	Timezone  *string   `db:"timezone" json:"timezone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SaveInput is the writable part of an Account
type SaveInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=100"`
	Country string `json:"country" validate:"max=100"`
	Zip     string `json:"zip" validate:"max=20"`
}

// Key identifies an account
type Key struct {
	ID string `json:"id" validate:"required,max=64,printascii"`
}
