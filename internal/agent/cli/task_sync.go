package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/memory"
)

// TaskSync создаёт CLI-команду для синхронизации локального снапшота задач с сервером.
//
// Команда запрашивает у сервера полный список задач текущего пользователя
// и полностью перезаписывает локальный снапшот.
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально).
//
// Поведение:
//  1. выполняет запрос Sync к серверу с access token;
//  2. преобразует ответ сервера в локальные записи memory.Task;
//  3. перезаписывает локальный tasks store (ReplaceAll);
//  4. сохраняет tasks store в файл;
//  5. выводит: "synced N tasks".
//
// Защита от несовпадения моделей:
// если сервер вернул элемент без ID (пустая строка), команда завершится ошибкой
// вида "sync: server returned task with empty id..." — это помогает быстро поймать
// рассинхрон JSON-модели между сервером и клиентом.
//
// Пример:
//
//	planner sync
func TaskSync(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Синхронизация задач с сервером",
		Long: `Синхронизация локального снапшота задач с сервером.

Загружает все задачи пользователя и полностью перезаписывает локальный файл.

Пример:
  planner sync
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: planner login")
			}

			c := NewAPIClient(app.ServerURL)
			result, err := c.Sync(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			tasks := make([]memory.Task, 0, len(result.Tasks))
			for i, t := range result.Tasks {
				// Стоп-кран: если ID пустой — значит модель ответа не совпала с JSON
				if t.ID == "" {
					return fmt.Errorf("sync: server returned task with empty id at index %d (model mismatch)", i)
				}

				tasks = append(tasks, memory.Task{
					ID:          t.ID,
					Title:       t.Title,
					Description: t.Description,
					Status:      t.Status,
					CreatedAt:   t.CreatedAt,
					UpdatedAt:   t.UpdatedAt,
				})
			}

			app.Tasks.ReplaceAll(tasks)

			if err := SaveTasksToFile(app.TasksPath, app.Tasks); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "synced %d tasks\n", len(tasks))
			return nil
		},
	}

	return cmd
}
