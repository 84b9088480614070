package domain

import "context"

// Admin is a console operator. Credentials are stored as a salted bcrypt hash;
// nothing else about the admin is mutated by this service.
type Admin struct {
	ID           int64  `json:"admin_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Salt         string `json:"-"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// AdminRepository defines the interface for admin storage
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
}

// AuthService defines the admin credential check. No session or token is
// issued; the caller only learns whether the credentials matched.
type AuthService interface {
	// Login returns ErrInvalidCredentials for an unknown username or a
	// password mismatch.
	Login(ctx context.Context, username, password string) error
}
