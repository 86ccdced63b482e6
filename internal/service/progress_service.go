package service

import (
	"context"
	"fmt"
	"math"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/util"
	"road_scholar_backend/pkg/monitoring"
)

// ProgressService reads and writes the per-user learning ledger:
// quiz history, lesson viewing time and the derived metrics.
type ProgressService struct {
	HistoryRepo    *repository.HistoryRepository
	UserLessonRepo *repository.UserLessonRepository
	LessonRepo     *repository.LessonRepository
	UserRepo       *repository.UserRepository
	Leaderboard    repository.LeaderboardCache
}

func NewProgressService(
	historyRepo *repository.HistoryRepository,
	userLessonRepo *repository.UserLessonRepository,
	lessonRepo *repository.LessonRepository,
	userRepo *repository.UserRepository,
	leaderboard repository.LeaderboardCache,
) *ProgressService {
	return &ProgressService{
		HistoryRepo:    historyRepo,
		UserLessonRepo: userLessonRepo,
		LessonRepo:     lessonRepo,
		UserRepo:       userRepo,
		Leaderboard:    leaderboard,
	}
}

type TrackLessonRequest struct {
	Duration int `json:"duration" binding:"min=0"`
}

type UpdateHistoryRequest struct {
	Score       *int  `json:"score" binding:"omitempty,min=0"`
	Duration    *int  `json:"duration" binding:"omitempty,min=0"`
	IsCompleted *bool `json:"is_completed"`
}

func (s *ProgressService) History(ctx context.Context, userID uint) ([]model.ActivityHistory, error) {
	return s.HistoryRepo.ListByUser(ctx, userID)
}

// HistoryOf lists another user's history; the user must exist.
func (s *ProgressService) HistoryOf(ctx context.Context, userID uint) ([]model.ActivityHistory, error) {
	if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.HistoryRepo.ListByUser(ctx, userID)
}

func (s *ProgressService) FindHistory(ctx context.Context, id uint) (*model.ActivityHistory, error) {
	return s.HistoryRepo.FindByID(ctx, id)
}

func (s *ProgressService) UpdateHistory(ctx context.Context, id uint, req *UpdateHistoryRequest) (*model.ActivityHistory, error) {
	if _, err := s.HistoryRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Score != nil {
		fields["score"] = *req.Score
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.IsCompleted != nil {
		fields["is_completed"] = *req.IsCompleted
	}
	if len(fields) > 0 {
		if err := s.HistoryRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
		s.Leaderboard.Invalidate(ctx)
	}
	return s.HistoryRepo.FindByID(ctx, id)
}

func (s *ProgressService) DeleteHistory(ctx context.Context, id uint) error {
	if err := s.HistoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Leaderboard.Invalidate(ctx)
	return nil
}

// Standing ranks userID among everyone with history. Rank is zero when the
// user has no attempts; TotalRanks always counts the ranked users.
func (s *ProgressService) Standing(ctx context.Context, userID uint) (*model.LeaderboardStanding, error) {
	rows, generation, ok := s.Leaderboard.Get(ctx)
	if !ok {
		var err error
		rows, err = s.HistoryRepo.LeaderboardRows(ctx)
		if err != nil {
			return nil, err
		}
		s.Leaderboard.Set(ctx, generation, rows)
	}
	return standingOf(rows, userID), nil
}

func standingOf(rows []model.LeaderboardRow, userID uint) *model.LeaderboardStanding {
	for i, row := range rows {
		if row.UserID == userID {
			return &model.LeaderboardStanding{
				Rank:       i + 1,
				TotalScore: row.TotalScore,
				TotalRanks: len(rows),
			}
		}
	}
	return &model.LeaderboardStanding{TotalRanks: len(rows)}
}

// Engagement is the share of all lessons the user has opened, as a whole percentage.
func (s *ProgressService) Engagement(ctx context.Context, userID uint) (*model.Engagement, error) {
	total, err := s.LessonRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.UserLessonRepo.CountViewed(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.Engagement{
		TotalLessons:      total,
		CompletedLessons:  completed,
		OverallEngagement: percent(completed, total),
	}, nil
}

func percent(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func (s *ProgressService) ModuleHours(ctx context.Context, userID uint) (*model.ModuleHours, error) {
	seconds, err := s.UserLessonRepo.SumDuration(ctx, userID)
	if err != nil {
		return nil, err
	}
	return moduleHours(seconds), nil
}

func moduleHours(seconds int64) *model.ModuleHours {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return &model.ModuleHours{
		TotalSeconds:  seconds,
		TotalHours:    hours,
		TotalMinutes:  minutes,
		FormattedTime: fmt.Sprintf("%02dh %02dm", hours, minutes),
	}
}

// TrackLesson adds viewing time to the user's row for the lesson.
func (s *ProgressService) TrackLesson(ctx context.Context, userID, lessonID uint, seconds int) (*model.UserLesson, error) {
	if seconds < 0 {
		return nil, util.Invalid("duration must not be negative")
	}
	lesson, err := s.LessonRepo.FindByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	row, err := s.UserLessonRepo.Track(ctx, userID, lesson.ID, lesson.ModuleID, seconds)
	if err != nil {
		return nil, err
	}
	monitoring.LessonSecondsTracked.Add(float64(seconds))
	return row, nil
}
