package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/shared/utils"
)

// Успех
func TestTasksRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTasksRepository(db)

	userID := uuid.New()
	taskID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO tasks`).
		WithArgs(userID, "купить хлеб", "").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "created_at"}).AddRow(taskID, now),
		)

	id, createdAt, err := repo.Create(context.Background(), userID, "купить хлеб", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != taskID {
		t.Fatalf("expected %v, got %v", taskID, id)
	}
	if !createdAt.Equal(now) {
		t.Fatalf("expected %v, got %v", now, createdAt)
	}
}

// База недоступна
func TestTasksRepository_Create_Unavailable(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTasksRepository(db)

	mock.ExpectQuery(`INSERT INTO tasks`).
		WillReturnError(sql.ErrConnDone)

	_, _, err := repo.Create(context.Background(), uuid.New(), "t", "")

	if err != serr.ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

// Все задачи пользователя в порядке создания
func TestTasksRepository_ListByUser_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTasksRepository(db)

	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(
		[]string{"id", "title", "description", "status", "created_at", "updated_at"},
	).
		AddRow(uuid.NewString(), "первая", "", "Incomplete", now, now).
		AddRow(uuid.NewString(), "вторая", "описание", "Complete", now.Add(time.Minute), now.Add(time.Minute))

	mock.ExpectQuery(`SELECT id, title, description, status, created_at, updated_at`).
		WithArgs(userID).
		WillReturnRows(rows)

	tasks, err := repo.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "первая" || tasks[1].Title != "вторая" {
		t.Fatal("unexpected order")
	}
}

// Пустой список — не ошибка и не nil
func TestTasksRepository_ListByUser_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTasksRepository(db)

	mock.ExpectQuery(`SELECT id, title, description, status, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "title", "description", "status", "created_at", "updated_at"},
		))

	tasks, err := repo.ListByUser(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tasks == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Fatalf("expected 0 tasks, got %d", len(tasks))
	}
}

// Частичное обновление: только title
func TestTasksRepository_Update_TitleOnly(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTasksRepository(db)

	userID := uuid.New()
	taskID := uuid.New()

	mock.ExpectExec(`UPDATE tasks`).
		WithArgs(taskID, userID, "новый заголовок").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), userID, taskID, utils.StrPtr("новый заголовок"), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Частичное обновление: все поля, пустой description очищает описание
func TestTasksRepository_Update_AllFields(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTasksRepository(db)

	userID := uuid.New()
	taskID := uuid.New()

	mock.ExpectExec(`UPDATE tasks`).
		WithArgs(taskID, userID, "t", "", "Complete").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(
		context.Background(), userID, taskID,
		utils.StrPtr("t"), utils.StrPtr(""), utils.StrPtr("Complete"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Нет такой задачи (или задача чужая — с точки зрения SQL это одно и то же)
func TestTasksRepository_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTasksRepository(db)

	mock.ExpectExec(`UPDATE tasks`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), uuid.New(), uuid.New(), utils.StrPtr("t"), nil, nil)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Успешное удаление
func TestTasksRepository_Delete_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTasksRepository(db)

	userID := uuid.New()
	taskID := uuid.New()

	mock.ExpectExec(`DELETE FROM tasks`).
		WithArgs(taskID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), userID, taskID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Повторное удаление того же id
func TestTasksRepository_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTasksRepository(db)

	mock.ExpectExec(`DELETE FROM tasks`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// База недоступна при удалении
func TestTasksRepository_Delete_Unavailable(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTasksRepository(db)

	mock.ExpectExec(`DELETE FROM tasks`).
		WillReturnError(sql.ErrConnDone)

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())

	if err != serr.ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
