package api

import (
	"fmt"

	sharedModels "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/models"
)

// Sync загружает все задачи пользователя с сервера.
//
// Выполняет запрос:
//
//	GET /tasks
//
// Параметры:
//   - accessToken: access-токен пользователя. Передаётся в заголовке Authorization: Bearer <token>.
//
// Возвращает:
//   - sharedModels.ListTasksResponse (содержит массив tasks в порядке создания)
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) Sync(accessToken string) (sharedModels.ListTasksResponse, error) {
	var resp sharedModels.ListTasksResponse
	err := c.GetJSON("/tasks", &resp, accessToken)
	return resp, err
}

// CreateTask создаёт новую задачу на сервере.
//
// Выполняет запрос:
//
//	POST /tasks
//
// Тело запроса сериализуется в JSON из sharedModels.CreateTaskRequest.
// Сервер проставляет статус Incomplete и владельца из токена.
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - req: данные создаваемой задачи (title и опционально description)
//
// Возвращает:
//   - sharedModels.CreateTaskResponse (ID и created_at)
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) CreateTask(accessToken string, req sharedModels.CreateTaskRequest) (sharedModels.CreateTaskResponse, error) {
	var resp sharedModels.CreateTaskResponse
	err := c.PostJSON("/tasks", req, &resp, accessToken)
	return resp, err
}

// UpdateTask обновляет существующую задачу на сервере по ID.
//
// Выполняет запрос:
//
//	PUT /tasks/{id}
//
// Тело запроса сериализуется в JSON из sharedModels.UpdateTaskRequest.
// Обновление частичное: в JSON попадают только заданные (ненулевые указатели)
// поля, отсутствующие поля сервер не трогает.
//
// Важно: сервер отвечает 204 No Content, тело ответа не декодируется.
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - id: идентификатор задачи (uuid)
//   - req: патч-данные обновления (title/description/status)
//
// Возвращает:
//   - nil при успешном обновлении (204)
//   - ошибку при неуспешном статусе (не 2xx), включая 404 для чужой/несуществующей задачи.
func (c *Client) UpdateTask(accessToken, id string, req sharedModels.UpdateTaskRequest) error {
	return c.PutJSON(fmt.Sprintf("/tasks/%s", id), req, nil, accessToken)
}

// DeleteTask удаляет задачу на сервере по ID.
//
// Выполняет запрос:
//
//	DELETE /tasks/{id}
//
// Удаление безвозвратное. Чужая и несуществующая задача дают одинаковую
// ошибку 404 — сервер не раскрывает существование чужих задач.
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - id: идентификатор задачи (uuid)
//
// Возвращает:
//   - nil при успешном удалении (204 No Content)
//   - ошибку при неуспешном статусе (не 2xx).
func (c *Client) DeleteTask(accessToken, id string) error {
	return c.DeleteJSON(fmt.Sprintf("/tasks/%s", id), nil, accessToken)
}
