package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/finiq/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Transcript messages the assistant sends on its own.
const (
	MessageWelcome         = "Welcome! Please set up your financial profile to get started."
	MessageProfileSet      = "Profile set successfully! How can I help you with your finances today?"
	MessageProfileFailed   = "Failed to set profile. Please try again."
	MessageProfileRequired = "Please set up your financial profile first. Use the profile form to get started."
	MessageError           = "Sorry, I encountered an error. Please try again later."
)

var ErrProfileRejected = errors.New("the profile could not be set")

// Service manages chat sessions. Every operation takes the ID of the session
// it works on, there is no shared per-user state.
type Service struct {
	backend Backend
}

// NewService returns a session service. With a nil backend, profiles are only
// stored locally and messages are answered by Respond.
func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// Online reports if messages are forwarded to an advisor backend.
func (s *Service) Online() bool {
	return s.backend != nil
}

// CreateSession starts a new session with the welcome message.
func (s *Service) CreateSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	err := models.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		return tx.Create(&models.Message{
			SessionID: session.ID,
			Role:      models.RoleAssistant,
			Content:   MessageWelcome,
		}).Error
	})

	return session, err
}

// Session returns the session with the given ID.
func (s *Service) Session(ctx context.Context, id uuid.UUID) (models.Session, error) {
	var session models.Session
	err := models.DB.WithContext(ctx).First(&session, id).Error
	return session, err
}

// SetProfile stores the profile of the session and forwards it to the backend.
//
// If the backend refuses the profile, a failure message is added to the
// transcript and an error wrapping ErrProfileRejected is returned.
func (s *Service) SetProfile(ctx context.Context, id uuid.UUID, profile models.Profile) (models.Session, error) {
	session, err := s.Session(ctx, id)
	if err != nil {
		return session, err
	}

	if err := profile.Validate(); err != nil {
		return session, err
	}

	if s.backend != nil {
		err = s.backend.SetProfile(ctx, session.ID.String(), Profile{
			Income:        profile.Income,
			Expenses:      profile.Expenses,
			Goals:         profile.Goals,
			Experience:    profile.Experience,
			RiskTolerance: profile.RiskTolerance,
		})
		if err != nil {
			log.Error().Str("session", session.ID.String()).Err(err).Msg("setting profile")

			if _, e := s.appendMessage(ctx, session.ID, models.RoleAssistant, MessageProfileFailed); e != nil {
				return session, e
			}
			return session, fmt.Errorf("%w: %w", ErrProfileRejected, err)
		}
	}

	err = models.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session.HasProfile = true
		session.Profile = profile
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		return tx.Create(&models.Message{
			SessionID: session.ID,
			Role:      models.RoleAssistant,
			Content:   MessageProfileSet,
		}).Error
	})

	return session, err
}

// SendMessage adds a user message to the transcript and answers it. It
// returns the messages that were added, which is none for blank content.
//
// Failures of the advisor backend are not returned as errors, they are
// answered with MessageError.
func (s *Service) SendMessage(ctx context.Context, id uuid.UUID, content string) ([]models.Message, error) {
	session, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return []models.Message{}, nil
	}

	question, err := s.appendMessage(ctx, session.ID, models.RoleUser, content)
	if err != nil {
		return nil, err
	}

	answer, err := s.appendMessage(ctx, session.ID, models.RoleAssistant, s.answer(ctx, session, content))
	if err != nil {
		return nil, err
	}

	return []models.Message{question, answer}, nil
}

func (s *Service) answer(ctx context.Context, session models.Session, content string) string {
	if !session.HasProfile {
		return MessageProfileRequired
	}

	if s.backend == nil {
		return Respond(content)
	}

	response, err := s.backend.Chat(ctx, session.ID.String(), content)
	if err != nil {
		log.Error().Str("session", session.ID.String()).Err(err).Msg("chat")
		return MessageError
	}

	return response
}

// ClearChat replaces the transcript with a greeting.
func (s *Service) ClearChat(ctx context.Context, id uuid.UUID) ([]models.Message, error) {
	session, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}

	var greeting models.Message
	err = models.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&models.Message{SessionID: session.ID}).Delete(&models.Message{}).Error
		if err != nil {
			return err
		}

		greeting = models.Message{
			SessionID: session.ID,
			Role:      models.RoleAssistant,
			Content:   ResponseGreeting,
		}
		return tx.Create(&greeting).Error
	})
	if err != nil {
		return nil, err
	}

	return []models.Message{greeting}, nil
}

// Transcript returns all messages of a session in the order they were sent.
func (s *Service) Transcript(ctx context.Context, id uuid.UUID) ([]models.Message, error) {
	session, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0)
	err = models.DB.WithContext(ctx).
		Where(&models.Message{SessionID: session.ID}).
		Order("position ASC, created_at ASC").
		Find(&messages).Error

	return messages, err
}

func (s *Service) appendMessage(ctx context.Context, sessionID uuid.UUID, role models.Role, content string) (models.Message, error) {
	m := models.Message{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	}

	err := models.DB.WithContext(ctx).Create(&m).Error
	return m, err
}
