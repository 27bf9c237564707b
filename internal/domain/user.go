package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrEmptyUserName = errors.New("user name cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrPasswordLong  = errors.New("password must be at most 72 characters long")
)

// maxPasswordLength is bcrypt's input limit.
const maxPasswordLength = 72

// User is a principal that can own OAuth clients and hold access tokens.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during creation
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given name, email and plaintext password.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
//
// NOTE: the caller (the user store) is responsible for hashing the password
// before it is persisted.
func NewUser(name, email, password string) (*User, error) {
	now := Timestamp(time.Now())
	user := &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyUserName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	// Existing users only carry the hash; new ones carry the plaintext.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}
	if len(u.Password) > maxPasswordLength {
		return ErrPasswordLong
	}

	return nil
}

// validateEmailFormat performs basic validation of email format:
// a non-empty local part, an @, and a domain with an inner dot.
func validateEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return false
	}

	domainPart := email[at+1:]
	dot := strings.IndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}
