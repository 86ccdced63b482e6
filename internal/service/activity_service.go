package service

import (
	"context"
	"errors"
	"fmt"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/util"
	"road_scholar_backend/pkg/logger"
	"road_scholar_backend/pkg/monitoring"
	"road_scholar_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	ModuleRepo   *repository.ModuleRepository
	QuestionRepo *repository.QuestionRepository
	AttemptRepo  *repository.AttemptRepository
	Assembler    *QuizAssembler
	Leaderboard  repository.LeaderboardCache
}

func NewActivityService(
	activityRepo *repository.ActivityRepository,
	moduleRepo *repository.ModuleRepository,
	questionRepo *repository.QuestionRepository,
	attemptRepo *repository.AttemptRepository,
	assembler *QuizAssembler,
	leaderboard repository.LeaderboardCache,
) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		ModuleRepo:   moduleRepo,
		QuestionRepo: questionRepo,
		AttemptRepo:  attemptRepo,
		Assembler:    assembler,
		Leaderboard:  leaderboard,
	}
}

type ActivityRequest struct {
	ModuleID    uint   `json:"module_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

type SubmitAnswersRequest struct {
	Answers  []uint `json:"answers" binding:"required,min=1"`
	Duration int    `json:"duration" binding:"min=0"`
}

// List returns every activity, each carrying a freshly assembled quiz.
func (s *ActivityService) List(ctx context.Context) ([]model.Activity, error) {
	activities, err := s.ActivityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range activities {
		questions, err := s.Assembler.Assemble(ctx, activities[i].ID)
		if err != nil {
			return nil, err
		}
		activities[i].Questions = questions
	}
	return activities, nil
}

// Show returns the activity with an assembled quiz.
func (s *ActivityService) Show(ctx context.Context, id uint) (*model.Activity, error) {
	activity, err := s.ActivityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	questions, err := s.Assembler.Assemble(ctx, id)
	if err != nil {
		return nil, err
	}
	activity.Questions = questions
	return activity, nil
}

func (s *ActivityService) Create(ctx context.Context, req *ActivityRequest) (*model.Activity, error) {
	if err := s.requireModule(ctx, req.ModuleID); err != nil {
		return nil, err
	}
	activity := &model.Activity{
		ModuleID:    req.ModuleID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.ActivityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Update(ctx context.Context, id uint, req *ActivityRequest) (*model.Activity, error) {
	activity, err := s.ActivityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireModule(ctx, req.ModuleID); err != nil {
		return nil, err
	}
	activity.ModuleID = req.ModuleID
	activity.Title = req.Title
	activity.Description = req.Description
	activity.Module = nil
	if err := s.ActivityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, id uint) error {
	return s.ActivityRepo.Delete(ctx, id)
}

func (s *ActivityService) requireModule(ctx context.Context, moduleID uint) error {
	ok, err := s.ModuleRepo.Exists(ctx, moduleID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrModuleNotFound
	}
	return nil
}

// SubmitAnswers grades a quiz attempt and records it.
// Every choice must exist and belong to the activity, and no choice may repeat;
// otherwise nothing is written. The score is the number of correct choices.
func (s *ActivityService) SubmitAnswers(ctx context.Context, userID, activityID uint, choiceIDs []uint, durationMinutes int) (*model.ActivityHistory, error) {
	ctx, span := tracing.Start(ctx, "quiz.grade",
		attribute.Int("activity.id", int(activityID)),
		attribute.Int("user.id", int(userID)),
		attribute.Int("quiz.answers", len(choiceIDs)),
	)
	defer span.End()

	history, err := s.grade(ctx, userID, activityID, choiceIDs, durationMinutes)
	if err != nil {
		monitoring.QuizSubmissions.WithLabelValues(outcomeOf(err)).Inc()
		tracing.Fail(span, err)
		return nil, err
	}

	monitoring.QuizSubmissions.WithLabelValues("committed").Inc()
	monitoring.QuizScore.Observe(float64(history.Score))
	span.SetAttributes(attribute.Int("quiz.score", history.Score))
	return history, nil
}

func (s *ActivityService) grade(ctx context.Context, userID, activityID uint, choiceIDs []uint, durationMinutes int) (*model.ActivityHistory, error) {
	if len(choiceIDs) == 0 {
		return nil, util.Invalid("answers must not be empty")
	}
	if durationMinutes < 0 {
		return nil, util.Invalid("duration must not be negative")
	}

	exists, err := s.ActivityRepo.Exists(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrActivityNotFound
	}

	seen := make(map[uint]bool, len(choiceIDs))
	for _, id := range choiceIDs {
		if seen[id] {
			return nil, util.Invalid(fmt.Sprintf("choice %d submitted more than once", id))
		}
		seen[id] = true
	}

	choices, err := s.QuestionRepo.FindChoicesForGrading(ctx, choiceIDs)
	if err != nil {
		return nil, err
	}

	score := 0
	answers := make([]model.UserAnswer, 0, len(choiceIDs))
	for _, id := range choiceIDs {
		choice, ok := choices[id]
		if !ok {
			return nil, util.ErrChoiceNotFound
		}
		if choice.ActivityID != activityID {
			return nil, util.Invalid(fmt.Sprintf("choice %d does not belong to activity %d", id, activityID))
		}
		if choice.IsCorrect {
			score++
		}
		answers = append(answers, model.UserAnswer{
			UserID:     userID,
			QuestionID: choice.QuestionID,
			ChoiceID:   id,
		})
	}

	history := &model.ActivityHistory{
		UserID:      userID,
		ActivityID:  activityID,
		Score:       score,
		Duration:    durationMinutes,
		IsCompleted: true,
	}
	if err := s.AttemptRepo.Save(ctx, answers, history); err != nil {
		logger.Log.Error("Failed to record quiz attempt",
			zap.Uint("userID", userID),
			zap.Uint("activityID", activityID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", util.ErrTransactionFailed, err)
	}

	s.Leaderboard.Invalidate(ctx)
	return history, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, util.ErrTransactionFailed):
		return "failed"
	case errors.Is(err, util.ErrNotFound), errors.Is(err, util.ErrValidation):
		return "rejected"
	default:
		return "error"
	}
}
