// Package service содержит бизнес-логику приложения (планировщик задач).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/server/config"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Tasks    TasksRepo
	Sessions SessionsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Tasks *TasksService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и токенов).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, repos.Sessions, cfg),
		Tasks: NewTasksService(repos.Tasks),
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/register/login).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
	GetByID(ctx context.Context, id uuid.UUID) (string, error)
}

// TasksRepo — репозиторий задач (owner-scoped CRUD).
type TasksRepo interface {
	Create(ctx context.Context, userID uuid.UUID, title, description string) (uuid.UUID, time.Time, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, title, description, status *string) error
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

// SessionsRepo — репозиторий refresh-сессий.
type SessionsRepo interface {
	Create(ctx context.Context, userID uuid.UUID, refreshHash []byte, expiresAt time.Time) (uuid.UUID, error)
	GetByRefreshHash(ctx context.Context, refreshHash []byte) (id uuid.UUID, userID uuid.UUID, expiresAt time.Time, revokedAt *time.Time, replacedBy *uuid.UUID, err error)
	RevokeAndReplace(ctx context.Context, oldID, newID uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}
