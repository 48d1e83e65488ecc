package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/henrymzs/estudeAI/internal/models"
)

// =============================================================================
// Test Database
// =============================================================================

// newTestDB opens an isolated in-memory database carrying the same schema
// the service migrates at startup.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying connection: %v", err)
	}
	// A single connection keeps every statement on the same in-memory
	// database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Deck{},
		&models.Flashcard{},
		&models.StudyRecord{},
		&models.ActionLog{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Ana", Email: email, PasswordHash: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}

func seedDeck(t *testing.T, db *gorm.DB, ownerID int64, title string) *models.Deck {
	t.Helper()
	deck := &models.Deck{UserID: ownerID, Title: title}
	if err := db.Create(deck).Error; err != nil {
		t.Fatalf("failed to seed deck %s: %v", title, err)
	}
	return deck
}

func seedCard(t *testing.T, db *gorm.DB, deckID int64, question string) *models.Flashcard {
	t.Helper()
	card := &models.Flashcard{DeckID: deckID, Question: question, Answer: "resposta"}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to seed flashcard %s: %v", question, err)
	}
	return card
}
