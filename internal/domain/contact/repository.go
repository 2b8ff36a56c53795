package contact

import "context"

// Repository defines persistence operations for contact submissions
type Repository interface {
	// Save stores a new contact submission
	Save(ctx context.Context, c *Contact) error

	// FindAll lists submissions, newest first
	FindAll(ctx context.Context) ([]Contact, error)
}
