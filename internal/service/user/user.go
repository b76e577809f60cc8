package user

import (
	"context"

	"github.com/crypt0g30rgy/anony/internal/model"
	repoToken "github.com/crypt0g30rgy/anony/internal/repository/token"
	repoUser "github.com/crypt0g30rgy/anony/internal/repository/user"
	tokenService "github.com/crypt0g30rgy/anony/internal/service/token"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo  repoUser.Repository
	tokenRepo repoToken.Repository
}

func NewUserService(userRepo repoUser.Repository, tokenRepo repoToken.Repository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// Login verifies credentials and returns a fresh access/refresh token pair.
// Every failure is reported as a plain 401 so the response does not reveal
// whether the email is registered.
func (s *UserService) Login(ctx context.Context, email, password string) (string, string, error) {
	userDb, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userDb.Password), []byte(password)); err != nil {
		return "", "", fiber.NewError(fiber.StatusUnauthorized)
	}

	if !userDb.Active {
		return "", "", fiber.NewError(fiber.StatusUnauthorized)
	}

	accessToken, refreshToken := tokenService.GenerateTokens(userDb.Id.Hex())
	err = s.tokenRepo.SaveToken(ctx, userDb.Id.Hex(), refreshToken)
	if err != nil {
		log.Error(err)
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RemoveToken(ctx, refreshToken)
}

func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	userFromToken, err := tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusUnauthorized)
	}

	token, err := s.tokenRepo.FindToken(ctx, refreshToken)
	if err != nil || token == nil {
		return "", "", fiber.NewError(fiber.StatusUnauthorized)
	}

	userDb, err := s.userRepo.GetUser(ctx, userFromToken.Id)
	if err != nil {
		return "", "", err
	}

	accessToken, newRefreshToken := tokenService.GenerateTokens(userDb.Id.Hex())
	err = s.tokenRepo.SaveToken(ctx, userDb.Id.Hex(), newRefreshToken)
	if err != nil {
		return "", "", err
	}

	return accessToken, newRefreshToken, nil
}

func (s *UserService) GetCurrentUser(ctx context.Context, id string) (model.User, error) {
	userDb, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	userDb.Password = ""
	return userDb, nil
}
