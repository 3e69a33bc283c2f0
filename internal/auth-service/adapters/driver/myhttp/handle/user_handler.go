package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fuelgo/internal/auth-service/core/domain/dto"
	"fuelgo/internal/auth-service/core/service"
	"fuelgo/internal/mylogger"
)

type AuthHandler struct {
	authService *service.AuthService
	mylog       mylogger.Logger
}

func NewAuthHandler(authService *service.AuthService, mylog mylogger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		mylog:       mylog,
	}
}

func (ah *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var regReq dto.UserRegistrationRequest

		mylog := ah.mylog.Action("Register")

		if err := json.NewDecoder(r.Body).Decode(&regReq); err != nil {
			mylog.Error("Failed to parse registration request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		res, err := ah.authService.Register(ctx, regReq)
		if err != nil {
			if errors.Is(err, service.ErrEmailRegistered) {
				jsonError(w, http.StatusBadRequest, errors.New("User already exists"))
				return
			}
			jsonError(w, http.StatusBadRequest, err)
			return
		}

		jsonResponse(w, http.StatusCreated, res)
		mylog.Info("Successfully registered!")
	}
}

func (ah *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var authReq dto.UserAuthRequest

		mylog := ah.mylog.Action("Login")

		if err := json.NewDecoder(r.Body).Decode(&authReq); err != nil {
			mylog.Error("Failed to parse login request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		res, err := ah.authService.Login(ctx, authReq)
		if err != nil {
			// wrong email and wrong password look the same to the caller
			if errors.Is(err, service.ErrUnknownEmail) || errors.Is(err, service.ErrPasswordUnknown) {
				jsonError(w, http.StatusBadRequest, errors.New("Invalid credentials"))
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
		mylog.Info("Successfully login!")
	}
}

func (ah *AuthHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		res, err := ah.authService.Profile(ctx, userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{
			"message":   "FUELGO auth service is running!",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
