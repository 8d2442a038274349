package memory

import (
	"sync"
	"time"

	serr "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/errors"
)

// Task — локальная модель задачи, хранимая в памяти агентом.
//
// Поля соответствуют данным, которые приходят от сервера при sync.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TasksStore — потокобезопасное in-memory хранилище задач.
//
// Используется CLI/агентом для:
//   - выдачи задачи по ID (Get)
//   - получения списка локальных задач (List)
//   - полной замены локального состояния после sync (ReplaceAll)
//   - локального обновления полей по данным сервера (UpdateFromServer)
//   - удаления задачи (Delete)
type TasksStore struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

// NewTasks создаёт пустое хранилище задач.
func NewTasks() *TasksStore {
	return &TasksStore{
		tasks: make(map[string]Task),
	}
}

// Get возвращает задачу по ID.
//
// Если задача отсутствует — возвращает serr.ErrTaskNotFound
func (s *TasksStore) Get(id string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.tasks[id]
	if !ok {
		return Task{}, serr.ErrTaskNotFound
	}
	return result, nil
}

// ReplaceAll полностью заменяет содержимое стора переданным списком.
//
// Используется после sync, чтобы локальное состояние строго соответствовало серверу.
// Если в списке есть дубликаты по ID, последнее значение перезапишет предыдущее.
func (s *TasksStore) ReplaceAll(tasks []Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make(map[string]Task, len(tasks))
	for _, t := range tasks {
		s.tasks[t.ID] = t
	}
}

// List возвращает список всех задач из стора.
//
// Порядок элементов не гарантируется (map).
func (s *TasksStore) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		result = append(result, task)
	}
	return result
}

// UpdateFromServer обновляет поля локальной задачи по ID.
//
// Обновляются только те поля, для которых переданы непустые указатели
// (та же семантика частичного обновления, что и на сервере).
// Также всегда обновляется UpdatedAt на time.Now().
//
// Если задача отсутствует — возвращает serr.ErrTaskNotFound.
func (s *TasksStore) UpdateFromServer(id string, title *string, description *string, status *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return serr.ErrTaskNotFound
	}

	if title != nil {
		task.Title = *title
	}
	if description != nil {
		task.Description = *description
	}
	if status != nil {
		task.Status = *status
	}

	task.UpdatedAt = time.Now()
	s.tasks[id] = task
	return nil
}

// Delete удаляет задачу по ID.
//
// Если задача отсутствует — возвращает serr.ErrTaskNotFound.
func (s *TasksStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return serr.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}
