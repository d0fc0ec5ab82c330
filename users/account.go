package users

import "time"

// Account is the identity provider's credential record.
type Account struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
