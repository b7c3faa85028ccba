package services

import (
	"context"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
	"gastroBack/utils"
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	SigningKey   string
}

const (
	accessTokenTTL  = 120 * time.Minute
	refreshTokenTTL = 720 * time.Hour
)

func (s *UserService) Register(ctx context.Context, user models.User) (models.SignInResponse, error) {
	existing, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err != nil && err != models.ErrUserNotFound {
		return models.SignInResponse{}, err
	}
	if existing.Email != "" {
		return models.SignInResponse{}, models.ErrDuplicateEmail
	}

	if user.Role != "" {
		role, err := models.ParseRole(user.Role)
		if err != nil {
			return models.SignInResponse{}, err
		}
		user.Role = role
	} else {
		user.Role = models.RoleUser
	}
	user.Status = models.UserStatusActive

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignInResponse{}, err
	}
	user.Password = string(hashedPassword)

	user, err = s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.SignInResponse{}, err
	}

	accessToken, err := s.newAccessToken(user.ID, user.Role)
	if err != nil {
		return models.SignInResponse{}, err
	}

	return models.SignInResponse{
		Message:     "User created successfully",
		UserID:      user.ID,
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, models.Tokens, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err == models.ErrUserNotFound {
		return models.SignInResponse{}, models.Tokens{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.SignInResponse{}, models.Tokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.SignInResponse{}, models.Tokens{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.newAccessToken(user.ID, user.Role)
	if err != nil {
		return models.SignInResponse{}, models.Tokens{}, err
	}

	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.SignInResponse{}, models.Tokens{}, err
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.SignInResponse{}, models.Tokens{}, err
	}

	resp := models.SignInResponse{
		Message:     "Login successful",
		UserID:      user.ID,
		AccessToken: accessToken,
		TokenType:   "bearer",
	}
	return resp, models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *UserService) newAccessToken(userID int, role string) (string, error) {
	claims := &models.Claims{
		UserID: uint(userID),
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
			Subject:   strconv.Itoa(userID),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SigningKey))
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetUsers(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (models.User, error) {
	return s.UserRepo.UpdateUser(ctx, id, upd)
}

func (s *UserService) ChangePassword(ctx context.Context, id int, req models.ChangePasswordRequest) error {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return models.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(ctx, id, string(hashedPassword))
}

func (s *UserService) ChangeRole(ctx context.Context, id int, role string) error {
	role, err := models.ParseRole(role)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdateRole(ctx, id, role)
}

func (s *UserService) ChangeStatus(ctx context.Context, id int, status string) error {
	status, err := models.ParseUserStatus(status)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdateStatus(ctx, id, status)
}

func (s *UserService) SetAllergens(ctx context.Context, id int, allergenIDs []int) error {
	return s.UserRepo.SetUserAllergens(ctx, id, allergenIDs)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserRepo.DeleteUser(ctx, id)
}
