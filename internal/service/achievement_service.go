package service

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
)

// AchievementService derives badges from the ledger on every call; nothing is stored.
type AchievementService struct {
	ModuleRepo     *repository.ModuleRepository
	ActivityRepo   *repository.ActivityRepository
	UserLessonRepo *repository.UserLessonRepository
	HistoryRepo    *repository.HistoryRepository
	MasteryScore   int
}

func NewAchievementService(
	moduleRepo *repository.ModuleRepository,
	activityRepo *repository.ActivityRepository,
	userLessonRepo *repository.UserLessonRepository,
	historyRepo *repository.HistoryRepository,
	masteryScore int,
) *AchievementService {
	return &AchievementService{
		ModuleRepo:     moduleRepo,
		ActivityRepo:   activityRepo,
		UserLessonRepo: userLessonRepo,
		HistoryRepo:    historyRepo,
		MasteryScore:   masteryScore,
	}
}

// Achievements lists the user's badges: completed modules, Road Scholar, mastered
// activities, Mastermind, then King of the Road.
func (s *AchievementService) Achievements(ctx context.Context, userID uint) ([]model.Badge, error) {
	moduleBadges, allModules, err := s.moduleBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	activityBadges, allActivities, err := s.activityBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	badges := make([]model.Badge, 0, len(moduleBadges)+len(activityBadges)+1)
	badges = append(badges, moduleBadges...)
	badges = append(badges, activityBadges...)
	if allModules && allActivities {
		badges = append(badges, model.BadgeKingOfTheRoad)
	}
	return badges, nil
}

func (s *AchievementService) moduleBadges(ctx context.Context, userID uint) ([]model.Badge, bool, error) {
	ids, err := s.ModuleRepo.IDs(ctx)
	if err != nil {
		return nil, false, err
	}
	totals, err := s.ModuleRepo.LessonCounts(ctx)
	if err != nil {
		return nil, false, err
	}
	viewed, err := s.UserLessonRepo.ViewedByModule(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	var badges []model.Badge
	completed := 0
	for _, id := range ids {
		if viewed[id] != totals[id] {
			continue
		}
		completed++
		if badge, ok := model.ModuleBadges[id]; ok {
			badges = append(badges, badge)
		}
	}

	// an empty catalogue earns no top-tier badge
	all := len(ids) > 0 && completed == len(ids)
	if all {
		badges = append(badges, model.BadgeRoadScholar)
	}
	return badges, all, nil
}

func (s *AchievementService) activityBadges(ctx context.Context, userID uint) ([]model.Badge, bool, error) {
	ids, err := s.ActivityRepo.IDs(ctx)
	if err != nil {
		return nil, false, err
	}
	best, err := s.HistoryRepo.MaxScores(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	var badges []model.Badge
	mastered := 0
	for _, id := range ids {
		score, ok := best[id]
		if !ok || score < s.MasteryScore {
			continue
		}
		mastered++
		if badge, ok := model.ActivityBadges[id]; ok {
			badges = append(badges, badge)
		}
	}

	all := len(ids) > 0 && mastered == len(ids)
	if all {
		badges = append(badges, model.BadgeMastermind)
	}
	return badges, all, nil
}
