package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"regexp"
	"road_scholar_backend/internal/config"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/util"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Google   *GoogleVerifier
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, google *GoogleVerifier, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Google:   google,
		Cfg:      cfg,
	}
}

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	User        *model.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error) {
	taken, err := s.UserRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrEmailRegistered
	}
	taken, err = s.UserRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  string(hashed),
		Role:      model.Student,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	user, err := s.UserRepo.FindByUsername(ctx, req.Username)
	if errors.Is(err, util.ErrUserNotFound) {
		return nil, util.ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return s.issue(user)
}

// RegisterWithGoogle signs a Google user in, creating the account on first use.
func (s *AuthService) RegisterWithGoogle(ctx context.Context, idToken string) (*TokenResponse, error) {
	profile, err := s.Google.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.UserRepo.FindByGoogleIDOrEmail(ctx, profile.Subject, profile.Email)
	if err == nil {
		return s.issue(user)
	}
	if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	username, err := s.uniqueUsername(ctx, profile.GivenName, profile.FamilyName)
	if err != nil {
		return nil, err
	}
	password, err := randomSecret()
	if err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	googleID := profile.Subject
	user = &model.User{
		FirstName:      profile.GivenName,
		LastName:       profile.FamilyName,
		Email:          profile.Email,
		Username:       username,
		GoogleID:       &googleID,
		ProfilePicture: profile.Picture,
		Password:       string(hashed),
		Role:           model.Student,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

// LoginWithGoogle only signs in users that already exist.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*TokenResponse, error) {
	profile, err := s.Google.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}
	user, err := s.UserRepo.FindByGoogleIDOrEmail(ctx, profile.Subject, profile.Email)
	if errors.Is(err, util.ErrUserNotFound) {
		return nil, util.Denied("user not registered")
	} else if err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*model.User, error) {
	return s.UserRepo.FindProfile(ctx, userID)
}

func (s *AuthService) issue(user *model.User) (*TokenResponse, error) {
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.Cfg.JWT.ExpireTime.Seconds()),
		User:        user,
	}, nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases s and joins its alphanumeric runs with dashes.
func Slug(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func (s *AuthService) uniqueUsername(ctx context.Context, first, last string) (string, error) {
	base := Slug(first) + "." + Slug(last)
	base = strings.Trim(base, ".")
	if base == "" {
		base = "user"
	}

	candidate := base
	for attempt := 0; attempt < 10; attempt++ {
		taken, err := s.UserRepo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, 100+mrand.IntN(900))
	}
	return "", util.ErrUsernameTaken
}

func randomSecret() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
