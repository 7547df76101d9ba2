package message

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"boolbnb/internal/domain"
	"boolbnb/internal/domain/property"
	"boolbnb/internal/mailer"
	"boolbnb/internal/metrics"
	"boolbnb/internal/pkg/validator"
)

// ContactRequest is the body of POST /properties/:slug/contact.
type ContactRequest struct {
	SenderEmail string `json:"sender_email" validate:"required,email,max=255"`
	MessageText string `json:"message_text" validate:"required,min=5,max=5000"`
}

type Service struct {
	db     *gorm.DB
	mailer mailer.Mailer
}

func NewService(db *gorm.DB, m mailer.Mailer) *Service {
	return &Service{db: db, mailer: m}
}

// Contact stores the message, then emails the listing owner. A failed send
// deletes the stored message again, so no row outlives an undelivered email.
func (s *Service) Contact(ctx context.Context, slug string, req *ContactRequest) (*domain.Message, error) {
	validator.TrimFields(req)
	if err := validator.First(req); err != nil {
		return nil, err
	}

	var (
		p   *domain.Property
		msg *domain.Message
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		p, err = property.FindBySlug(ctx, tx, slug)
		if err != nil {
			return err
		}
		msg = &domain.Message{PropertyID: p.ID, SenderEmail: req.SenderEmail, MessageText: req.MessageText}
		return tx.Create(msg).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.mailer.Send(ctx, contactEmail(p, req)); err != nil {
		metrics.ContactEmails.WithLabelValues("failed").Inc()
		// the request context may already be done; the delete must still run
		if derr := s.db.WithContext(context.WithoutCancel(ctx)).Delete(&domain.Message{}, msg.ID).Error; derr != nil {
			return nil, fmt.Errorf("send contact email: %w (removing message %d: %v)", err, msg.ID, derr)
		}
		return nil, fmt.Errorf("send contact email: %w", err)
	}
	metrics.ContactEmails.WithLabelValues("sent").Inc()
	return msg, nil
}

func contactEmail(p *domain.Property, req *ContactRequest) mailer.Email {
	return mailer.Email{
		To:      p.UserEmail,
		Subject: "New message on BoolBnB: " + p.Title,
		Body:    fmt.Sprintf("You received a new message from %s:\n\n\"%s\"\n", req.SenderEmail, req.MessageText),
	}
}
