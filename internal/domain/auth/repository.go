package auth

import "context"

type UserRepository interface {
	Create(ctx context.Context, user User) (int64, error)
	// GetActiveByEmail returns nil when no active user matches.
	GetActiveByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
}
