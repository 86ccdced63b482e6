package model

type UserRole string

const (
	Student UserRole = "student"
	Faculty UserRole = "faculty"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Email          string   `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Username       string   `gorm:"size:191;uniqueIndex;not null" json:"username"`
	FirstName      string   `gorm:"size:255;not null" json:"first_name"`
	LastName       string   `gorm:"size:255;not null" json:"last_name"`
	Password       string   `gorm:"size:255;not null" json:"-"`
	GoogleID       *string  `gorm:"size:191;uniqueIndex" json:"google_id,omitempty"`
	ProfilePicture string   `gorm:"size:512" json:"profile_picture"`
	Address        string   `gorm:"size:255" json:"address"`
	Role           UserRole `gorm:"size:20;default:'student'" json:"role"`

	History   []ActivityHistory `gorm:"foreignKey:UserID" json:"history,omitempty"`
	Bookmarks []BookmarkModule  `gorm:"foreignKey:UserID" json:"bookmarks,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
