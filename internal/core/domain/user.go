package domain

import "time"

// User is an authenticated operator of the application. All business
// profiles live under a single user session; users carry no per-tenant
// role model.
type User struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
