package auth

import "time"

type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var Roles = []string{"employee", "owner", "hr", "accounts"}
