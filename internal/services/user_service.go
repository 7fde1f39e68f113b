package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"menageBack/internal/models"
	"menageBack/internal/repositories"
	"menageBack/utils"
)

type UserService struct {
	UserRepo      *repositories.UserRepository
	ResetCodeRepo *repositories.ResetCodeRepository
	TokenManager  *utils.Manager
	SigningKey    string
}

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	resetCodeTTL    = 10 * time.Minute
)

func generateResetCode() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.SignUpResponse, error) {
	if user.Email != "" {
		existing, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
		if err != nil {
			return models.SignUpResponse{}, err
		}
		if existing.Email != "" {
			return models.SignUpResponse{}, models.ErrDuplicateEmail
		}
	}
	if user.Phone != "" {
		existing, err := s.UserRepo.GetUserByPhone(ctx, user.Phone)
		if err != nil {
			return models.SignUpResponse{}, err
		}
		if existing.Phone != "" {
			return models.SignUpResponse{}, models.ErrDuplicatePhone
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = "host"
	}

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, created)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	return models.SignUpResponse{User: created, Tokens: tokens}, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignUpResponse, error) {
	var user models.User
	var err error
	switch {
	case req.Email != "":
		user, err = s.UserRepo.GetUserByEmail(ctx, req.Email)
	case req.Phone != "":
		user, err = s.UserRepo.GetUserByPhone(ctx, req.Phone)
	default:
		return models.SignUpResponse{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.SignUpResponse{}, err
	}
	if user.ID == 0 {
		return models.SignUpResponse{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.SignUpResponse{}, models.ErrInvalidCredentials
	}
	user.Password = ""

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	return models.SignUpResponse{User: user, Tokens: tokens}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The session
// row is overwritten, so the old refresh token stops working.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (models.Tokens, error) {
	session, err := s.UserRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return models.Tokens{}, err
	}
	if time.Now().After(session.ExpiresAt) {
		return models.Tokens{}, models.ErrInvalidCredentials
	}
	user, err := s.UserRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return models.Tokens{}, err
	}
	return s.issueTokens(ctx, user)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: uint(user.ID),
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})
	access, err := token.SignedString([]byte(s.SigningKey))
	if err != nil {
		return models.Tokens{}, err
	}
	refresh, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}
	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}
	return models.Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User) error {
	return s.UserRepo.UpdateUser(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserRepo.DeleteUser(ctx, id)
}

func (s *UserService) ChangePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	user, err := s.UserRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return models.ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(ctx, req.UserID, string(hashed))
}

// RequestPasswordReset stores a short-lived code for the user. Delivery
// (mail/SMS) is handled by the caller; the code is returned for that.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user.ID == 0 {
		return "", models.ErrUserNotFound
	}
	code := generateResetCode()
	if err := s.ResetCodeRepo.StoreResetCode(ctx, user.ID, code, resetCodeTTL); err != nil {
		return "", err
	}
	return code, nil
}

func (s *UserService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user.ID == 0 {
		return models.ErrUserNotFound
	}
	if err := s.ResetCodeRepo.VerifyResetCode(ctx, user.ID, req.Code); err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		return err
	}
	return s.ResetCodeRepo.DeleteResetCode(ctx, user.ID)
}
