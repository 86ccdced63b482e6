package model

type Module struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Image       string     `gorm:"size:512" json:"image"`
	Lessons     []Lesson   `gorm:"foreignKey:ModuleID" json:"lessons,omitempty"`
	Activities  []Activity `gorm:"foreignKey:ModuleID" json:"activities,omitempty"`
}

func (Module) TableName() string {
	return "modules"
}

type Lesson struct {
	BaseModel
	ModuleID    uint    `gorm:"index;not null" json:"module_id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Content     string  `gorm:"type:text" json:"content"`
	Image       string  `gorm:"size:512" json:"image"`
	Video       string  `gorm:"size:512" json:"video"`
	Duration    int     `gorm:"default:0" json:"duration"` // seconds
	Module      *Module `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// ModuleProgress is the per-user completion summary attached to module reads.
type ModuleProgress struct {
	Progress         string `json:"progress"`
	CompletedLessons int64  `json:"completed_lessons"`
	TotalLessons     int64  `json:"total_lessons"`
}

// ModuleView is a module decorated for the requesting user.
type ModuleView struct {
	Module
	IsBookmarked bool           `json:"is_bookmarked"`
	Progress     ModuleProgress `json:"progress"`
}
