package contact

import (
	"regexp"

	"github.com/storefront/backend/internal/domain/shared"
)

var phoneChars = regexp.MustCompile(`^[+0-9]+$`)

// Contact is a message submitted through the storefront contact form
type Contact struct {
	shared.BaseEntity
	FirstName string
	LastName  string
	Email     string
	Phone     string // optional
	Message   string
}

// New creates a new contact submission
func New(firstName, lastName, email, phone, message string) (*Contact, error) {
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First and last name are required")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email is required")
	}
	if message == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message cannot be empty")
	}
	if phone != "" && !phoneChars.MatchString(phone) {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone number must be valid or empty")
	}
	return &Contact{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      phone,
		Message:    message,
	}, nil
}
