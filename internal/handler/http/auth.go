package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/auth"
	"github.com/gajikita/selaras-backend/internal/handler/http/response"
	"github.com/gajikita/selaras-backend/internal/pkg/jwt"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User registered successfully", result)
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.Token.RefreshToken, result.Token.RefreshTokenExpiresAt))
	response.Success(w, result)
}

func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	token, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(token.RefreshToken, token.RefreshTokenExpiresAt))
	response.Success(w, token)
}

func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
		response.HandleError(w, err)
		return
	}

	expired := h.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
