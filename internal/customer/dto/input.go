package dto

import "time"

// CustomerInput carries a customer write. A nil RegistrationDate means now.
type CustomerInput struct {
	UserID           int64
	Phone            string
	Address          string
	RegistrationDate *time.Time
}
