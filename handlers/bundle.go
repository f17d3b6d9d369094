// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "appointly/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct, plus the
// user repository the auth middleware resolves identities against.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	BlockedDates *BlockedDateHandler
	Appointments *AppointmentHandler
	Users        *UserHandler
	Email        *EmailHandler
}
