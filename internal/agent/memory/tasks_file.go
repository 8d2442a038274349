package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// TasksDump — формат файла локального снапшота задач.
//
// Файл содержит объект вида:
//
//	{ "tasks": [ ... ] }
type TasksDump struct {
	Tasks []Task `json:"tasks"`
}

// DefaultTasksPath возвращает путь по умолчанию для локального файла задач.
//
// Путь формируется как:
//
//	$HOME/.planner/tasks.json
//
// Ошибки:
//   - возвращает ошибку, если не удаётся определить домашнюю директорию пользователя.
func DefaultTasksPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".planner", "tasks.json"), nil
}

// SaveToFile сериализует текущее состояние store в JSON и сохраняет в файл по пути path.
//
// Поведение:
//   - читает store под RLock (потокобезопасно);
//   - создаёт директорию для файла (MkdirAll) с правами 0700;
//   - сохраняет файл с правами 0600;
//   - формат JSON: TasksDump{Tasks:[...]} с отступами (MarshalIndent).
//
// Важно:
//   - порядок задач в JSON не гарантируется (map).
func SaveToFile(path string, store *TasksStore) error {
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := TasksDump{Tasks: make([]Task, 0, len(store.tasks))}
	for _, t := range store.tasks {
		out.Tasks = append(out.Tasks, t)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// LoadFromFile загружает задачи из JSON-файла в store.
//
// Поведение:
//   - если файл не существует — возвращает nil (это нормальная ситуация при первом запуске);
//   - если JSON некорректный — возвращает ошибку Unmarshal;
//   - при успешной загрузке полностью заменяет содержимое store (ReplaceAll semantics).
//
// Важно:
//   - операция замены выполняется под Lock (потокобезопасно).
func LoadFromFile(path string, store *TasksStore) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var dump TasksDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	// заменяем полностью — после sync это удобно
	store.tasks = make(map[string]Task, len(dump.Tasks))
	for _, t := range dump.Tasks {
		store.tasks[t.ID] = t
	}

	return nil
}
