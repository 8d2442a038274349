package models

import "time"

// Статусы задачи. Других значений быть не может — сервер валидирует.
const (
	StatusIncomplete = "Incomplete"
	StatusComplete   = "Complete"
)

// Task — плоская модель задачи, используемая в HTTP API.
//
// Поля:
//   - ID: уникальный идентификатор задачи (UUID в виде строки, выдаёт хранилище)
//   - Title: заголовок задачи, всегда непустой
//   - Description: описание, может быть пустым
//   - Status: Incomplete | Complete (новая задача всегда Incomplete)
//   - CreatedAt: время создания задачи (серверное)
//   - UpdatedAt: время последнего изменения задачи (серверное)
//
// Владелец задачи наружу не отдаётся — каждый видит только свои задачи.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListTasksResponse — ответ эндпоинта получения всех задач пользователя.
//
// Используется в:
//   GET /tasks
//
// Задачи возвращаются в порядке создания.
type ListTasksResponse struct {
	Tasks []Task `json:"tasks"`
}

// CreateTaskRequest — запрос на создание новой задачи.
//
// Используется в:
//   POST /tasks
//
// Поля:
//   - Title обязателен (непустой после trim)
//   - Description опционально
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CreateTaskResponse — ответ на создание задачи.
//
// Возвращает:
//   - ID созданной задачи
//   - CreatedAt (время создания на сервере)
type CreateTaskResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateTaskRequest — запрос на обновление задачи (partial update) по ID.
//
// Используется в:
//   PUT /tasks/{id}
//
// Поля — указатели: отсутствующее поле не трогаем, присутствующее — ставим.
// Это позволяет явно очистить description пустой строкой, в отличие от
// проверки "на пустоту". Title при наличии обязан быть непустым,
// Status — одним из Incomplete|Complete.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}
