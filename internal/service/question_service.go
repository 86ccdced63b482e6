package service

import (
	"context"
	"mime/multipart"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/util"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	ChoiceRepo   *repository.ChoiceRepository
	ActivityRepo *repository.ActivityRepository
	Storage      *StorageService
}

func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	choiceRepo *repository.ChoiceRepository,
	activityRepo *repository.ActivityRepository,
	storage *StorageService,
) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		ChoiceRepo:   choiceRepo,
		ActivityRepo: activityRepo,
		Storage:      storage,
	}
}

type ChoiceInput struct {
	ID        uint   `json:"id"`
	Context   string `json:"context" binding:"required,max=255"`
	IsCorrect *bool  `json:"is_correct" binding:"required"`
}

type QuestionRequest struct {
	ActivityID uint                   `json:"activity_id"`
	Question   string                 `json:"question" binding:"required,max=255"`
	Category   model.QuestionCategory `json:"category" binding:"required,oneof=situational normal interactive"`
	Type       model.QuestionType     `json:"type" binding:"required,oneof=text image"`
	Choices    []ChoiceInput          `json:"choices" binding:"required,min=1,dive"`
}

type ChoiceRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Context    string `json:"context" binding:"required,max=255"`
	IsCorrect  *bool  `json:"is_correct" binding:"required"`
}

func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	return s.QuestionRepo.List(ctx)
}

func (s *QuestionService) Show(ctx context.Context, id uint) (*model.Question, error) {
	return s.QuestionRepo.FindByID(ctx, id)
}

func (s *QuestionService) Create(ctx context.Context, req *QuestionRequest) (*model.Question, error) {
	if req.ActivityID == 0 {
		return nil, util.Invalid("activity_id is required")
	}
	if err := s.requireActivity(ctx, req.ActivityID); err != nil {
		return nil, err
	}

	question := &model.Question{
		ActivityID: req.ActivityID,
		Question:   req.Question,
		Category:   req.Category,
		Type:       req.Type,
		Choices:    make([]model.Choice, 0, len(req.Choices)),
	}
	for _, c := range req.Choices {
		question.Choices = append(question.Choices, model.Choice{Context: c.Context, IsCorrect: *c.IsCorrect})
	}
	if err := s.QuestionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return s.QuestionRepo.FindByID(ctx, question.ID)
}

// Update rewrites the question and reconciles its choices: listed ids are updated,
// new entries are created and everything else is removed.
func (s *QuestionService) Update(ctx context.Context, id uint, req *QuestionRequest) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ActivityID != 0 && req.ActivityID != question.ActivityID {
		if err := s.requireActivity(ctx, req.ActivityID); err != nil {
			return nil, err
		}
		question.ActivityID = req.ActivityID
	}
	question.Question = req.Question
	question.Category = req.Category
	question.Type = req.Type
	question.Activity = nil
	question.Choices = nil

	choices := make([]model.Choice, 0, len(req.Choices))
	for _, c := range req.Choices {
		choice := model.Choice{Context: c.Context, IsCorrect: *c.IsCorrect}
		choice.ID = c.ID
		choices = append(choices, choice)
	}
	if err := s.QuestionRepo.UpdateWithChoices(ctx, question, choices); err != nil {
		return nil, err
	}
	return s.QuestionRepo.FindByID(ctx, id)
}

func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	return s.QuestionRepo.Delete(ctx, id)
}

func (s *QuestionService) UploadImage(ctx context.Context, id uint, file *multipart.FileHeader) (*model.Question, error) {
	if _, err := s.QuestionRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	stored, err := s.Storage.StoreUpload(ctx, "questions", file, []string{util.MimeImage})
	if err != nil {
		return nil, err
	}
	if err := s.QuestionRepo.UpdateImage(ctx, id, stored.URL); err != nil {
		return nil, err
	}
	return s.QuestionRepo.FindByID(ctx, id)
}

func (s *QuestionService) requireActivity(ctx context.Context, activityID uint) error {
	ok, err := s.ActivityRepo.Exists(ctx, activityID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrActivityNotFound
	}
	return nil
}

func (s *QuestionService) ListChoices(ctx context.Context) ([]model.Choice, error) {
	return s.ChoiceRepo.List(ctx)
}

func (s *QuestionService) ShowChoice(ctx context.Context, id uint) (*model.Choice, error) {
	return s.ChoiceRepo.FindByID(ctx, id)
}

func (s *QuestionService) CreateChoice(ctx context.Context, req *ChoiceRequest) (*model.Choice, error) {
	if _, err := s.QuestionRepo.FindByID(ctx, req.QuestionID); err != nil {
		return nil, err
	}
	choice := &model.Choice{QuestionID: req.QuestionID, Context: req.Context, IsCorrect: *req.IsCorrect}
	if err := s.ChoiceRepo.Create(ctx, choice); err != nil {
		return nil, err
	}
	return choice, nil
}

func (s *QuestionService) UpdateChoice(ctx context.Context, id uint, req *ChoiceRequest) (*model.Choice, error) {
	choice, err := s.ChoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.QuestionID != choice.QuestionID {
		if _, err := s.QuestionRepo.FindByID(ctx, req.QuestionID); err != nil {
			return nil, err
		}
		choice.QuestionID = req.QuestionID
	}
	choice.Context = req.Context
	choice.IsCorrect = *req.IsCorrect
	if err := s.ChoiceRepo.Update(ctx, choice); err != nil {
		return nil, err
	}
	return choice, nil
}

func (s *QuestionService) DeleteChoice(ctx context.Context, id uint) error {
	return s.ChoiceRepo.Delete(ctx, id)
}
