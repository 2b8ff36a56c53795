package contact

import (
	"context"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/contact"
)

// SubmitRequest is a storefront contact-form submission
type SubmitRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,inphone"`
	Message   string `json:"message" binding:"required"`
}

// Response is the stored view of a contact submission
type Response struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// ToResponse maps a domain contact to its API view
func ToResponse(c *contact.Contact) Response {
	return Response{
		ID:        c.ID.String(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Service handles contact-form submissions and the admin listing
type Service struct {
	contacts contact.Repository
	logger   *zap.Logger
}

// NewService creates a new contact service
func NewService(contacts contact.Repository, logger *zap.Logger) *Service {
	return &Service{
		contacts: contacts,
		logger:   logger.Named("contact"),
	}
}

// Submit validates and stores a contact-form message
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Response, error) {
	c, err := contact.New(req.FirstName, req.LastName, req.Email, req.Phone, req.Message)
	if err != nil {
		return nil, err
	}
	if err := s.contacts.Save(ctx, c); err != nil {
		s.logger.Error("failed to save contact submission", zap.Error(err))
		return nil, err
	}

	s.logger.Info("contact submission received", zap.String("contact_id", c.ID.String()))

	resp := ToResponse(c)
	return &resp, nil
}

// List returns all submissions, newest first
func (s *Service) List(ctx context.Context) ([]Response, error) {
	contacts, err := s.contacts.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list contact submissions", zap.Error(err))
		return nil, err
	}
	responses := make([]Response, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, ToResponse(&contacts[i]))
	}
	return responses, nil
}
