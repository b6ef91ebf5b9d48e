package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in the transcript of a Session.
type Message struct {
	DefaultModel
	Session   Session   `json:"-"`
	SessionID uuid.UUID `json:"sessionId" gorm:"index"`
	Position  int64     `json:"position"` // Index of the message in the transcript
	Role      Role      `json:"role" example:"assistant"`
	Content   string    `json:"content" example:"Hello! I'm FinIQ, your AI financial advisor."`
}

// BeforeCreate sets the ID and appends the message at the end of the
// transcript.
//
// The hook runs inside the transaction gorm opens for the create, so the
// position is read and written atomically.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if err := m.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	var next int64
	err := tx.Session(&gorm.Session{NewDB: true}).
		Model(&Message{}).
		Where(&Message{SessionID: m.SessionID}).
		Select("COALESCE(MAX(position) + 1, 0)").
		Scan(&next).Error
	if err != nil {
		return err
	}

	m.Position = next
	return nil
}
