package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	serr "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/errors"
)

// TaskDelete создаёт CLI-команду для удаления задачи на сервере и локально.
//
// Команда удаляет задачу по ID на сервере, а затем удаляет её из локального
// снапшота и сохраняет обновлённый tasks-файл. Удаление безвозвратное.
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально).
//
// Пример использования:
//
//	planner delete 7a0a4a6a-a7bf-42c0-8cdf-2be8583d180e
//
// Повторное удаление того же ID вернёт ошибку 404 от сервера.
// В случае успешного выполнения команда выводит: "deleted task <id>".
func TaskDelete(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить задачу на сервере и локально",
		Long: `Удаляет задачу по ID на сервере и в локальном снапшоте.

Удаление безвозвратное. Чужая и несуществующая задача дают одинаковый 404.

Пример:
  planner delete <uuid>
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: planner login")
			}

			id := args[0]

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteTask(app.Creds.AccessToken, id); err != nil {
				return err
			}

			// локально задачи могло и не быть (снапшот устарел) — это не ошибка
			if err := app.Tasks.Delete(id); err != nil && !errors.Is(err, serr.ErrTaskNotFound) {
				return err
			}
			if err := SaveTasksToFile(app.TasksPath, app.Tasks); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted task %s\n", id)
			return nil
		},
	}
	return cmd
}
