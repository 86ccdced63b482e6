package model

type QuestionCategory string

const (
	CategorySituational QuestionCategory = "situational"
	CategoryNormal      QuestionCategory = "normal"
	CategoryInteractive QuestionCategory = "interactive"
)

// RequiredCategories lists, in draw order, the categories every assembled quiz must cover.
var RequiredCategories = []QuestionCategory{CategorySituational, CategoryNormal, CategoryInteractive}

func (c QuestionCategory) Valid() bool {
	switch c {
	case CategorySituational, CategoryNormal, CategoryInteractive:
		return true
	}
	return false
}

type QuestionType string

const (
	QuestionText  QuestionType = "text"
	QuestionImage QuestionType = "image"
)

type Activity struct {
	BaseModel
	ModuleID    uint       `gorm:"index;not null" json:"module_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Module      *Module    `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
	Questions   []Question `gorm:"foreignKey:ActivityID" json:"questions"`
}

func (Activity) TableName() string {
	return "activities"
}

type Question struct {
	BaseModel
	ActivityID uint             `gorm:"index;not null" json:"activity_id"`
	Question   string           `gorm:"size:255;not null" json:"question"`
	Image      string           `gorm:"size:512" json:"image"`
	Category   QuestionCategory `gorm:"size:20;index;not null" json:"category"`
	Type       QuestionType     `gorm:"size:20;not null;default:'text'" json:"type"`
	Activity   *Activity        `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
	Choices    []Choice         `gorm:"foreignKey:QuestionID" json:"choices"`
}

func (Question) TableName() string {
	return "questions"
}

type Choice struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"question_id"`
	Context    string `gorm:"size:255;not null" json:"context"`
	IsCorrect  bool   `gorm:"default:false" json:"is_correct"`
}

func (Choice) TableName() string {
	return "choices"
}

// QuestionRef is the slim projection the quiz assembler samples from.
type QuestionRef struct {
	ID       uint
	Category QuestionCategory
}
