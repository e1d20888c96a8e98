package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quickscan/models"
	"quickscan/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so a caller cannot tell which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when registering an email that already has an
// account.
var ErrEmailTaken = errors.New("email already registered")

// ErrUserNotFound signals that no account exists with the given id.
var ErrUserNotFound = errors.New("user not found")

// Register creates a new user account with a bcrypt-hashed password and
// signs the user in.
func (s *DefaultUserService) Register(input models.UserRegistration) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(input.Phone),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.issueSession(u)
}

// Authenticate verifies credentials against the stored hash and issues a
// session token carrying the user's id and role. Unknown emails and hash
// mismatches are rejected identically.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(u)
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile changes the mutable profile fields; empty inputs leave the
// stored value untouched. Email and role are not editable here.
func (s *DefaultUserService) UpdateProfile(userID string, input models.ProfileUpdate) (*models.User, error) {
	u, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		u.Name = name
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		u.Phone = phone
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return u, nil
}

// SignOut revokes the cached token hash so the current token stops
// authenticating.
func (s *DefaultUserService) SignOut(userID string) error {
	if s.AuthCache == nil {
		return nil
	}
	ctx := context.Background()
	if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// issueSession generates the JWT and caches its hash as the single valid
// token for this user.
func (s *DefaultUserService) issueSession(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, utils.SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if s.AuthCache != nil {
		ctx := context.Background()
		key := utils.AuthCachePrefix + u.ID
		if err := s.AuthCache.Set(ctx, key, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("issueSession: failed to cache token hash", zap.Error(err))
		}
	}

	return &AuthResponse{Token: token, User: *u}, nil
}
