package model

// LeaderboardRow is one user's total over their latest attempt per activity.
type LeaderboardRow struct {
	UserID     uint `json:"user_id"`
	TotalScore int  `json:"total_score"`
}

type LeaderboardStanding struct {
	Rank       int `json:"rank"`
	TotalScore int `json:"total_score"`
	TotalRanks int `json:"total_ranks"`
}

type Engagement struct {
	TotalLessons      int64 `json:"total_lessons"`
	CompletedLessons  int64 `json:"completed_lessons"`
	OverallEngagement int   `json:"overall_engagement_percentage"`
}

type ModuleHours struct {
	TotalSeconds  int64  `json:"total_seconds"`
	TotalHours    int64  `json:"total_hours"`
	TotalMinutes  int64  `json:"total_minutes"`
	FormattedTime string `json:"formatted_time"`
}
