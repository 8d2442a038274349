package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/shared/models"
)

// TasksRepository реализует доступ к хранилищу задач (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
//
// Ключевой инвариант: каждый запрос к конкретной задаче фильтруется
// одновременно по id И по user_id. Чужая задача неотличима от несуществующей.
type TasksRepository struct {
	db *sql.DB
}

// NewTasksRepository создаёт новый экземпляр TasksRepository.
func NewTasksRepository(db *sql.DB) *TasksRepository {
	return &TasksRepository{db: db}
}

// Create сохраняет новую задачу пользователя.
//
// id выдаёт БД (gen_random_uuid), статус БД проставляет Incomplete.
//
// Возвращает:
//   - id        — UUID созданной задачи
//   - createdAt — время создания
//
// Ошибки:
//   - ErrUnavailable — база недоступна
//   - ErrInternal — прочие ошибки базы данных
func (r *TasksRepository) Create(ctx context.Context, userID uuid.UUID, title, description string) (uuid.UUID, time.Time, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO tasks (user_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`,
		userID, title, description,
	).Scan(&id, &createdAt)

	if err != nil {
		return uuid.Nil, time.Time{}, mapDBError(err)
	}

	return id, createdAt, nil
}

// ListByUser возвращает все задачи пользователя в порядке создания.
//
// Для пользователя без задач возвращается пустой срез, не ошибка.
func (r *TasksRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, status, created_at, updated_at
		  FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, mapDBError(err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err)
	}

	return tasks, nil
}

// Update применяет partial update одним UPDATE-стейтментом.
//
// nil-поля не попадают в SET. Хотя бы одно поле должно быть задано —
// за этим следит сервисный слой. Конкурентные обновления — last-writer-wins,
// версии/локов нет.
//
// Ошибки:
//   - ErrNotFound — нет задачи с таким (id, user_id); специально не различаем
//     "нет такой задачи" и "задача чужая"
func (r *TasksRepository) Update(ctx context.Context, userID, taskID uuid.UUID, title, description, status *string) error {
	set := make([]string, 0, 4)
	args := []any{taskID, userID}

	if title != nil {
		args = append(args, *title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if description != nil {
		args = append(args, *description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if status != nil {
		args = append(args, *status)
		set = append(set, fmt.Sprintf("status = $%d", len(args)))
	}
	set = append(set, "updated_at = now()")

	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET `+strings.Join(set, ", ")+` WHERE id = $1 AND user_id = $2`,
		args...,
	)
	if err != nil {
		return mapDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return mapDBError(err)
	}
	if affected == 0 {
		return serr.ErrNotFound
	}
	return nil
}

// Delete удаляет задачу безвозвратно.
//
// Ошибки:
//   - ErrNotFound — по тому же правилу (id, user_id), что и Update;
//     повторный Delete того же id вернёт ErrNotFound
func (r *TasksRepository) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID, userID,
	)
	if err != nil {
		return mapDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return mapDBError(err)
	}
	if affected == 0 {
		return serr.ErrNotFound
	}
	return nil
}
