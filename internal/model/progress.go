package model

import "time"

// UserAnswer is written once per submitted choice while grading.
type UserAnswer struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	QuestionID uint      `gorm:"index;not null" json:"question_id"`
	ChoiceID   uint      `gorm:"index;not null" json:"choice_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}

type ActivityHistory struct {
	BaseModel
	UserID      uint      `gorm:"index:idx_history_user_activity;not null" json:"user_id"`
	ActivityID  uint      `gorm:"index:idx_history_user_activity;not null" json:"activity_id"`
	Score       int       `gorm:"default:0" json:"score"`
	Duration    int       `gorm:"default:0" json:"duration"` // minutes
	IsCompleted bool      `gorm:"default:false" json:"is_completed"`
	Activity    *Activity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
}

func (ActivityHistory) TableName() string {
	return "activity_histories"
}

// UserLesson accumulates viewing time; one row per (user, lesson).
type UserLesson struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_lesson;not null" json:"user_id"`
	LessonID  uint      `gorm:"uniqueIndex:idx_user_lesson;not null" json:"lesson_id"`
	ModuleID  uint      `gorm:"index;not null" json:"module_id"`
	Duration  int       `gorm:"default:0" json:"duration"` // seconds
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserLesson) TableName() string {
	return "user_lessons"
}

type BookmarkModule struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_module;not null" json:"user_id"`
	ModuleID  uint      `gorm:"uniqueIndex:idx_user_module;not null" json:"module_id"`
	Module    *Module   `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (BookmarkModule) TableName() string {
	return "bookmark_modules"
}

type Feedback struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Rating   *int   `json:"rating"`
	Comment  string `gorm:"type:text" json:"comment"`
	FollowUp bool   `gorm:"default:false" json:"follow_up"`
	User     *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
