// Package testutil opens throwaway sqlite databases with the production schema.
package testutil

import (
	"path/filepath"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/pkg/database"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB returns a migrated database in t's temp dir, closed on cleanup.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func User(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: username,
		LastName:  "Tester",
		Password:  "x",
		Role:      model.Student,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func Module(t *testing.T, db *gorm.DB, title string) *model.Module {
	t.Helper()
	module := &model.Module{Title: title}
	require.NoError(t, db.Create(module).Error)
	return module
}

func Lesson(t *testing.T, db *gorm.DB, moduleID uint, title string) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{ModuleID: moduleID, Title: title}
	require.NoError(t, db.Create(lesson).Error)
	return lesson
}

func Activity(t *testing.T, db *gorm.DB, moduleID uint, title string) *model.Activity {
	t.Helper()
	activity := &model.Activity{ModuleID: moduleID, Title: title}
	require.NoError(t, db.Create(activity).Error)
	return activity
}

// Question stores a question with one correct and one wrong choice, correct first.
func Question(t *testing.T, db *gorm.DB, activityID uint, category model.QuestionCategory) *model.Question {
	t.Helper()
	question := &model.Question{
		ActivityID: activityID,
		Question:   "What does this sign mean?",
		Category:   category,
		Type:       model.QuestionText,
		Choices: []model.Choice{
			{Context: "right", IsCorrect: true},
			{Context: "wrong", IsCorrect: false},
		},
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func History(t *testing.T, db *gorm.DB, userID, activityID uint, score int) *model.ActivityHistory {
	t.Helper()
	history := &model.ActivityHistory{
		UserID:      userID,
		ActivityID:  activityID,
		Score:       score,
		IsCompleted: true,
	}
	require.NoError(t, db.Create(history).Error)
	return history
}
