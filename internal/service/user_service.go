package service

import (
	"context"
	"mime/multipart"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/util"
)

type UserService struct {
	UserRepo    *repository.UserRepository
	Storage     *StorageService
	Leaderboard repository.LeaderboardCache
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService, leaderboard repository.LeaderboardCache) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		Storage:     storage,
		Leaderboard: leaderboard,
	}
}

type UpdateProfileRequest struct {
	FirstName      *string `json:"first_name" binding:"omitempty,max=255"`
	LastName       *string `json:"last_name" binding:"omitempty,max=255"`
	ProfilePicture *string `json:"profile_picture" binding:"omitempty,url"`
	Address        *string `json:"address" binding:"omitempty,max=255"`
}

// UpdateProfile applies the fields present in req and returns the refreshed profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req *UpdateProfileRequest) (*model.User, error) {
	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.ProfilePicture != nil {
		fields["profile_picture"] = *req.ProfilePicture
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}

	if len(fields) > 0 {
		if err := s.UserRepo.UpdateFields(ctx, userID, fields); err != nil {
			return nil, err
		}
	}
	return s.UserRepo.FindProfile(ctx, userID)
}

func (s *UserService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (*model.User, error) {
	if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	stored, err := s.Storage.StoreUpload(ctx, "avatars", file, []string{util.MimeImage})
	if err != nil {
		return nil, err
	}
	if err := s.UserRepo.UpdateFields(ctx, userID, map[string]interface{}{"profile_picture": stored.URL}); err != nil {
		return nil, err
	}
	return s.UserRepo.FindProfile(ctx, userID)
}

// Delete removes the user with everything they own.
func (s *UserService) Delete(ctx context.Context, userID uint) error {
	if err := s.UserRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.Leaderboard.Invalidate(ctx)
	return nil
}
