package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fuelgo/internal/auth-service/core/domain/dto"
	"fuelgo/internal/auth-service/core/domain/models"
	"fuelgo/internal/auth-service/core/ports"
	"fuelgo/internal/config"
	"fuelgo/internal/mylogger"

	"github.com/golang-jwt/jwt"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	cfg      *config.Config
	userRepo ports.IUserRepo
	mylog    mylogger.Logger
}

func NewAuthService(
	cfg *config.Config,
	userRepo ports.IUserRepo,
	mylog mylogger.Logger,
) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: userRepo,
		mylog:    mylog,
	}
}

func (as *AuthService) Register(ctx context.Context, regReq dto.UserRegistrationRequest) (dto.AuthResponse, error) {
	mylog := as.mylog.Action("Register")

	if err := validateRegistration(regReq.Name, regReq.Email, regReq.Password); err != nil {
		return dto.AuthResponse{}, err
	}

	hashedPassword, err := hashPassword(regReq.Password)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("failed to hash password: %v", err)
	}

	user := models.User{
		Name:         regReq.Name,
		Email:        regReq.Email,
		PasswordHash: hashedPassword,
		Phone:        regReq.Phone,
		VehicleType:  regReq.VehicleType,
	}

	id, err := as.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, ErrEmailRegistered) {
			mylog.Warn("Failed to register, email already registered")
			return dto.AuthResponse{}, err
		}
		mylog.Error("Failed to save user in db", err)
		return dto.AuthResponse{}, fmt.Errorf("cannot save user in db: %w", err)
	}

	token, err := as.signToken(id)
	if err != nil {
		mylog.Error("failed to create jwt token", err)
		return dto.AuthResponse{}, err
	}

	mylog.Info("User registered successfully", "user_id", id)
	return dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          id,
			Name:        user.Name,
			Email:       user.Email,
			Phone:       user.Phone,
			VehicleType: user.VehicleType,
		},
	}, nil
}

func (as *AuthService) Login(ctx context.Context, authReq dto.UserAuthRequest) (dto.AuthResponse, error) {
	mylog := as.mylog.Action("Login")

	if err := validateLogin(authReq.Email, authReq.Password); err != nil {
		return dto.AuthResponse{}, err
	}

	user, err := as.userRepo.GetByEmail(ctx, authReq.Email)
	if err != nil {
		if errors.Is(err, ErrUnknownEmail) {
			mylog.Warn("Failed to login, unknown email")
			return dto.AuthResponse{}, err
		}
		mylog.Error("Failed to fetch user from db", err)
		return dto.AuthResponse{}, fmt.Errorf("cannot fetch user from db: %w", err)
	}

	// Compare password hashes
	if !checkPassword(user.PasswordHash, authReq.Password) {
		mylog.Debug("Failed to login, wrong password")
		return dto.AuthResponse{}, ErrPasswordUnknown
	}

	token, err := as.signToken(user.UserID)
	if err != nil {
		mylog.Error("failed to create jwt token", err)
		return dto.AuthResponse{}, err
	}

	mylog.Info("User login successfully", "user_id", user.UserID)
	return dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          user.UserID,
			Name:        user.Name,
			Email:       user.Email,
			Phone:       user.Phone,
			VehicleType: user.VehicleType,
		},
	}, nil
}

func (as *AuthService) Profile(ctx context.Context, userID string) (dto.UserResponse, error) {
	mylog := as.mylog.Action("Profile")

	user, err := as.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return dto.UserResponse{}, err
		}
		mylog.Error("Failed to fetch user from db", err)
		return dto.UserResponse{}, fmt.Errorf("cannot fetch user from db: %w", err)
	}

	return dto.UserResponse{
		ID:          user.UserID,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		VehicleType: user.VehicleType,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (as *AuthService) signToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(as.cfg.App.JwtSecret))
}
