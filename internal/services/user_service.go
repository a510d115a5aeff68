package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"

	"shelterBack/internal/models"
	"shelterBack/internal/repositories"
	"shelterBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	resetCodeTTL    = 10 * time.Minute
	resetCodePrefix = "reset:"
	defaultUserRole = "user"
	defaultUserType = "seeker"
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	Redis        *redis.Client
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if req.Email == "" || req.Password == "" {
		return models.User{}, models.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	userType := req.UserType
	if userType == "" {
		userType = defaultUserType
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
		UserType: userType,
		Role:     defaultUserRole,
	}
	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	created.Password = ""
	return created, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.TokenManager.NewJWT(user.ID, accessTokenTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}
	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		refreshToken = uuid.New().String() // fallback if the random source fails
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.SignInResponse{}, err
	}

	user.Password = ""
	return models.SignInResponse{
		User: user,
		Tokens: models.Tokens{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (s *UserService) Logout(ctx context.Context, userID string) error {
	return s.UserRepo.DeleteSessionsByUser(ctx, userID)
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	updated, err := s.UserRepo.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	updated.Password = ""
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.UserRepo.DeleteSessionsByUser(ctx, id); err != nil {
		log.Printf("delete sessions for %s: %v", id, err)
	}
	return s.UserRepo.DeleteUser(ctx, id)
}

// RequestPasswordReset issues a short-lived 6-digit code for the account and
// keeps it in Redis. Delivery of the code (mail) is handled outside this
// service.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if _, err := s.UserRepo.GetUserByEmail(ctx, email); err != nil {
		return "", err
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	if err := s.Redis.Set(ctx, resetCodePrefix+email, code, resetCodeTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

func (s *UserService) VerifyResetCode(ctx context.Context, email, code string) error {
	stored, err := s.Redis.Get(ctx, resetCodePrefix+email).Result()
	if err != nil || stored != code {
		return models.ErrResetCodeMismatch
	}
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := s.VerifyResetCode(ctx, req.Email, req.Code); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(ctx, req.Email, string(hashedPassword)); err != nil {
		return err
	}

	if err := s.Redis.Del(ctx, resetCodePrefix+req.Email).Err(); err != nil {
		log.Printf("delete reset code for %s: %v", req.Email, err)
	}
	// force a fresh sign-in everywhere after a password change
	if user, err := s.UserRepo.GetUserByEmail(ctx, req.Email); err == nil {
		if err := s.UserRepo.DeleteSessionsByUser(ctx, user.ID); err != nil {
			log.Printf("delete sessions for %s: %v", user.ID, err)
		}
	}
	return nil
}
