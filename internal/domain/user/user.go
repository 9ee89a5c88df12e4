// Package user contains the User entity and its validation rules.
package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
)

// Username length bounds enforced on create and update.
const (
	MinUsernameLen = 3
	MaxUsernameLen = 50
)

// User represents an account that tasks can be assigned to.
// Email is optional; nil means no address on record.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     *string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the User entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (u *User) Validate() error {
	fields := make(map[string]string)

	name := strings.TrimSpace(u.Username)
	switch {
	case name == "":
		fields["username"] = domain.MsgRequired
	case len(name) < MinUsernameLen || len(name) > MaxUsernameLen:
		fields["username"] = fmt.Sprintf("must be %d-%d characters, got %d",
			MinUsernameLen, MaxUsernameLen, len(name))
	}

	if u.Email != nil && !validEmail(*u.Email) {
		fields["email"] = fmt.Sprintf("invalid format: %q", *u.Email)
	}

	if !u.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", u.Role)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// validEmail reports whether addr is a syntactically valid bare address.
// mail.ParseAddress accepts display-name forms like "Bob <bob@x>"; those are
// rejected by requiring the parsed address to round-trip to the input.
func validEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}
