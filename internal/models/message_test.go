package models_test

import (
	"github.com/finiq/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMessagePosition() {
	session := suite.createTestSession(models.Session{})
	other := suite.createTestSession(models.Session{})

	first := suite.createTestMessage(models.Message{SessionID: session.ID, Role: models.RoleAssistant, Content: "Welcome"})
	second := suite.createTestMessage(models.Message{SessionID: session.ID, Role: models.RoleUser, Content: "hi"})
	elsewhere := suite.createTestMessage(models.Message{SessionID: other.ID, Role: models.RoleUser, Content: "hello"})

	assert.Equal(suite.T(), int64(0), first.Position)
	assert.Equal(suite.T(), int64(1), second.Position)
	assert.Equal(suite.T(), int64(0), elsewhere.Position)
}

func (suite *TestSuiteStandard) TestMessagePositionAfterDelete() {
	session := suite.createTestSession(models.Session{})
	suite.createTestMessage(models.Message{SessionID: session.ID, Content: "one"})
	suite.createTestMessage(models.Message{SessionID: session.ID, Content: "two"})

	err := models.DB.Where(&models.Message{SessionID: session.ID}).Delete(&models.Message{}).Error
	assert.Nil(suite.T(), err)

	m := suite.createTestMessage(models.Message{SessionID: session.ID, Content: "fresh"})
	assert.Equal(suite.T(), int64(0), m.Position)
}

func (suite *TestSuiteStandard) TestMessageUnknownSession() {
	err := models.DB.Create(&models.Message{SessionID: uuid.New(), Content: "orphan"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestMessagePositionAfterGap() {
	session := suite.createTestSession(models.Session{})
	suite.createTestMessage(models.Message{SessionID: session.ID, Content: "one"})
	middle := suite.createTestMessage(models.Message{SessionID: session.ID, Content: "two"})
	suite.createTestMessage(models.Message{SessionID: session.ID, Content: "three"})

	assert.Nil(suite.T(), models.DB.Delete(&middle).Error)

	m := suite.createTestMessage(models.Message{SessionID: session.ID, Content: "four"})
	assert.Equal(suite.T(), int64(3), m.Position)
}
