package user

import (
	userRepo "quickscan/database/repository/user"
	"quickscan/models"

	"github.com/go-redis/redis/v8"
)

// AuthResponse carries the issued session token and the public user profile.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService defines account management and credential authentication.
type UserService interface {
	Register(input models.UserRegistration) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
	UpdateProfile(userID string, input models.ProfileUpdate) (*models.User, error)
	SignOut(userID string) error
}

// DefaultUserService implements UserService. AuthCache holds the hash of the
// currently valid token per user; when nil, token caching is skipped and
// sign-out becomes a no-op until the next token expiry.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
