// HTTP-хендлеры регистрации, логина, refresh токенов и /me
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/errors"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse описывает успешный ответ регистрации.
type RegisterResponse struct {
	UserID string `json:"user_id"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает успешный ответ входа пользователя.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest описывает тело запроса обновления токенов.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse описывает успешный ответ обновления токенов.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MeResponse описывает ответ /me с данными текущего пользователя.
type MeResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 409 Conflict: пользователь уже существует;
//   - 503 Service Unavailable: хранилище недоступно;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register user
// @Description  Creates a new account. Password is stored as a salted slow hash, never plaintext.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      409 {object} ErrorResponse "Already exists"
// @Failure      503 {object} ErrorResponse "Storage unavailable"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, serr.ErrBadJSON.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.Svc.Auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			http.Error(w, serr.ErrInvalidInput.Error(), http.StatusBadRequest)
		case errors.Is(err, serr.ErrAlreadyExists):
			http.Error(w, serr.ErrAlreadyExists.Error(), http.StatusConflict)
		case errors.Is(err, serr.ErrUnavailable):
			http.Error(w, serr.ErrUnavailable.Error(), http.StatusServiceUnavailable)
		default:
			h.Log.Logger.Sugar().Error("register failed")
			http.Error(w, serr.ErrInternal.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(RegisterResponse{UserID: id.String()})
}

// Login обрабатывает вход пользователя и выдачу пары токенов.
//
// Неизвестный email и неверный пароль дают одинаковый ответ 401 —
// нельзя перебором выяснять, кто зарегистрирован.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 401 Unauthorized: неверные учётные данные;
//   - 503 Service Unavailable: хранилище недоступно;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Login
// @Description  Authenticates a user and issues an access/refresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      503 {object} ErrorResponse "Storage unavailable"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, serr.ErrBadJSON.Error(), http.StatusBadRequest)
		return
	}

	pair, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			http.Error(w, serr.ErrInvalidInput.Error(), http.StatusBadRequest)
		case errors.Is(err, serr.ErrInvalidCredentials):
			http.Error(w, serr.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		case errors.Is(err, serr.ErrUnavailable):
			http.Error(w, serr.ErrUnavailable.Error(), http.StatusServiceUnavailable)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			http.Error(w, serr.ErrInternal.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh обрабатывает обновление access-токена по refresh-токену.
//
// Ответы:
//   - 200 OK: успешное обновление токенов;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 401 Unauthorized: refresh токен недействителен/просрочен/отозван;
//   - 503 Service Unavailable: хранилище недоступно;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Refresh tokens
// @Description  Exchanges a refresh token for a new access/refresh pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest true "Refresh request"
// @Success      200 {object} RefreshResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      503 {object} ErrorResponse "Storage unavailable"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, serr.ErrBadJSON.Error(), http.StatusBadRequest)
		return
	}

	pair, err := h.Svc.Auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			http.Error(w, serr.ErrInvalidInput.Error(), http.StatusBadRequest)
		case errors.Is(err, serr.ErrUnauthorized):
			http.Error(w, serr.ErrUnauthorized.Error(), http.StatusUnauthorized)
		case errors.Is(err, serr.ErrUnavailable):
			http.Error(w, serr.ErrUnavailable.Error(), http.StatusServiceUnavailable)
		default:
			h.Log.Logger.Sugar().Error("refresh failed")
			http.Error(w, serr.ErrInternal.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Me возвращает данные текущего пользователя по access токену.
//
// Ответы:
//   - 200 OK;
//   - 401 Unauthorized: токен отсутствует/невалиден/пользователь удалён;
//   - 503 Service Unavailable: хранилище недоступно;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Current user
// @Description  Returns the user id and email associated with the access token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} MeResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      503 {object} ErrorResponse "Storage unavailable"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	email, err := h.Svc.Auth.Whoami(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUnauthorized):
			WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		case errors.Is(err, serr.ErrUnavailable):
			WriteError(w, http.StatusServiceUnavailable, serr.ErrUnavailable)
		default:
			h.Log.Logger.Sugar().Errorw("whoami failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(MeResponse{UserID: userID.String(), Email: email})
}
