package service

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
)

type FeedbackService struct {
	FeedbackRepo *repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{FeedbackRepo: feedbackRepo}
}

type FeedbackRequest struct {
	Rating   *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment  string `json:"comment"`
	FollowUp bool   `json:"follow_up"`
}

func (s *FeedbackService) List(ctx context.Context) ([]model.Feedback, error) {
	return s.FeedbackRepo.List(ctx)
}

func (s *FeedbackService) Show(ctx context.Context, id uint) (*model.Feedback, error) {
	return s.FeedbackRepo.FindByID(ctx, id)
}

func (s *FeedbackService) Create(ctx context.Context, userID uint, req *FeedbackRequest) (*model.Feedback, error) {
	feedback := &model.Feedback{
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		FollowUp: req.FollowUp,
	}
	if err := s.FeedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *FeedbackService) Update(ctx context.Context, id uint, req *FeedbackRequest) (*model.Feedback, error) {
	feedback, err := s.FeedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	feedback.Rating = req.Rating
	feedback.Comment = req.Comment
	feedback.FollowUp = req.FollowUp
	feedback.User = nil
	if err := s.FeedbackRepo.Update(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *FeedbackService) Delete(ctx context.Context, id uint) error {
	return s.FeedbackRepo.Delete(ctx, id)
}
