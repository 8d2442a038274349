package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/shared/models"
)

// TasksService реализует бизнес-логику работы с задачами пользователя.
// Сервис:
//   - валидирует входные данные;
//   - следит за семантикой partial update;
//   - не знает о HTTP и БД напрямую.
//
// Владелец приходит из JWT (middleware), сервис никогда не доверяет
// идентичности из тела запроса.
type TasksService struct {
	repo TasksRepo
}

// NewTasksService создаёт новый TasksService.
func NewTasksService(repo TasksRepo) *TasksService {
	return &TasksService{repo: repo}
}

// validStatus проверяет значение статуса из запроса.
func validStatus(s string) bool {
	return s == models.StatusIncomplete || s == models.StatusComplete
}

// Create создаёт новую задачу пользователя.
//
// Валидации:
//   - title непустой после trim (пробельный title — это пустой title);
//   - description может быть любым, включая пустой.
//
// Статус новой задачи всегда Incomplete — его выставляет хранилище.
//
// Ошибки:
//   - ErrInvalidInput — пустой title;
//   - ErrUserIDEmpty — пустой владелец (ошибка программиста, не клиента).
func (s *TasksService) Create(ctx context.Context, userID uuid.UUID, title, description string) (uuid.UUID, time.Time, error) {
	if userID == uuid.Nil {
		return uuid.Nil, time.Time{}, serr.ErrUserIDEmpty
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return uuid.Nil, time.Time{}, serr.ErrInvalidInput
	}

	return s.repo.Create(ctx, userID, title, description)
}

// List возвращает все задачи пользователя в порядке создания.
//
// Для пользователя без задач — пустой список, не ошибка.
func (s *TasksService) List(ctx context.Context, userID uuid.UUID) ([]models.Task, error) {
	if userID == uuid.Nil {
		return nil, serr.ErrUserIDEmpty
	}
	return s.repo.ListByUser(ctx, userID)
}

// Update применяет partial update к задаче пользователя.
//
// Семантика полей-указателей:
//   - nil — поле не трогаем;
//   - не nil — поле ставим, в том числе пустой description
//     (так можно явно очистить описание).
//
// Валидации:
//   - хотя бы одно поле должно быть задано;
//   - title при наличии — непустой после trim;
//   - status при наличии — Incomplete|Complete (переход в обе стороны разрешён).
//
// Повторный Update с теми же полями идемпотентен.
//
// Ошибки:
//   - ErrInvalidInput — нечего обновлять или невалидные значения;
//   - ErrNotFound — нет задачи с таким (id, владелец).
func (s *TasksService) Update(ctx context.Context, userID, taskID uuid.UUID, req models.UpdateTaskRequest) error {
	if userID == uuid.Nil {
		return serr.ErrUserIDEmpty
	}

	if req.Title == nil && req.Description == nil && req.Status == nil {
		return serr.ErrInvalidInput
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			return serr.ErrInvalidInput
		}
		req.Title = &trimmed
	}

	if req.Status != nil && !validStatus(*req.Status) {
		return serr.ErrInvalidInput
	}

	return s.repo.Update(ctx, userID, taskID, req.Title, req.Description, req.Status)
}

// Delete удаляет задачу пользователя безвозвратно.
//
// Ошибки:
//   - ErrNotFound — по тому же правилу (id, владелец), что и Update.
func (s *TasksService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if userID == uuid.Nil {
		return serr.ErrUserIDEmpty
	}
	return s.repo.Delete(ctx, userID, taskID)
}
