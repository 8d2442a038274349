// HTTP-хендлеры CRUD задач. Владелец берётся только из JWT-контекста.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/shared/models"
)

// CreateTask создаёт новую задачу для аутентифицированного пользователя.
//
// Сервер:
//   - валидирует title (непустой после trim);
//   - привязывает задачу к владельцу из токена, навсегда;
//   - проставляет статус Incomplete.
//
// Требует JWT-аутентификацию.
//
// @Summary      Create task
// @Description  Creates a new task for the authenticated user with status Incomplete.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateTaskRequest true "Create task request"
// @Success      201 {object} models.CreateTaskResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      503 {object} ErrorResponse "Storage unavailable"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /tasks [post]
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	id, createdAt, err := h.Svc.Tasks.Create(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrUnavailable):
			WriteError(w, http.StatusServiceUnavailable, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"create task failed",
				"error", err,
				"user_id", userID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.CreateTaskResponse{
		ID:        id.String(),
		CreatedAt: createdAt,
	})
}

// ListTasks возвращает все задачи текущего пользователя.
//
// Пользователь определяется по JWT-токену (middleware).
// Задачи возвращаются в порядке создания; у пользователя без задач — пустой список.
//
// @Summary      List tasks
// @Description  Returns all tasks belonging to the authenticated user, in creation order.
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.ListTasksResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      503 {object} ErrorResponse "Storage unavailable"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /tasks [get]
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}
	// вызываем сервис
	tasks, err := h.Svc.Tasks.List(r.Context(), userID)
	if err != nil {
		if errors.Is(err, serr.ErrUnavailable) {
			WriteError(w, http.StatusServiceUnavailable, serr.ErrUnavailable)
			return
		}
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	data := models.ListTasksResponse{
		Tasks: tasks,
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}

// UpdateTask обновляет существующую задачу пользователя.
//
// Идентификатор задачи передаётся в URL-параметре `{id}`.
// Пользователь определяется по JWT-токену (middleware).
//
// Обновление частичное: меняются только присутствующие в теле поля.
// Присутствующий пустой description очищает описание. Обновление
// применяется одним стейтментом: другие наблюдатели либо видят старое
// состояние, либо новое, но не промежуточное.
//
// Если задачи нет ИЛИ она принадлежит другому пользователю — одинаковый
// ответ 404 Not Found. Это сделано намеренно, чтобы по кодам ответов
// нельзя было выяснить существование чужих задач.
//
// @Summary      Update task
// @Description  Partially updates a task belonging to the authenticated user.
// @Description  Only fields present in the body are changed; a present empty
// @Description  description clears it. Missing and foreign tasks are both 404.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Task ID (UUID)"
// @Param        body    body      models.UpdateTaskRequest  true  "Fields to update"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse "Bad request"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      503 {object} ErrorResponse "Storage unavailable"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /tasks/{id} [put]
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskIDStr := chi.URLParam(r, "id")
	taskID, err := uuid.Parse(taskIDStr)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	err = h.Svc.Tasks.Update(r.Context(), userID, taskID, req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		case errors.Is(err, serr.ErrUnavailable):
			WriteError(w, http.StatusServiceUnavailable, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"update task failed",
				"error", err,
				"user_id", userID.String(),
				"task_id", taskID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask удаляет задачу пользователя безвозвратно.
//
// Правило 404 то же, что у UpdateTask: чужая задача неотличима от
// несуществующей. Повторный DELETE того же id вернёт 404.
//
// @Summary      Delete task
// @Description  Permanently deletes a task belonging to the authenticated user.
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task ID (UUID)"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse "Bad request"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      503 {object} ErrorResponse "Storage unavailable"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /tasks/{id} [delete]
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskIDStr := chi.URLParam(r, "id")
	taskID, err := uuid.Parse(taskIDStr)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	err = h.Svc.Tasks.Delete(r.Context(), userID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		case errors.Is(err, serr.ErrUnavailable):
			WriteError(w, http.StatusServiceUnavailable, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"delete task failed",
				"error", err,
				"user_id", userID.String(),
				"task_id", taskID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
