package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/memory"
	sharedModels "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/models"
)

// TaskCreate создаёт CLI-команду для создания новой задачи на сервере.
//
// Команда отправляет на сервер заголовок и (опционально) описание задачи.
// Сервер проставляет статус Incomplete и привязывает задачу к текущему
// пользователю по access токену.
//
// Обязательные флаги:
//
//	--title — заголовок задачи (непустой)
//
// Необязательные флаги:
//
//	--description — описание задачи
//
// Примеры использования:
//
//	planner add --title "купить хлеб"
//	planner add --title "созвон с командой" --description "в 15:00, ссылка в календаре"
//
// В случае успешного выполнения команда:
//  1. получает от сервера ID и created_at;
//  2. добавляет задачу в локальный снапшот и сохраняет файл;
//  3. выводит сообщение вида: "created task <id>".
func TaskCreate(app *App) *cobra.Command {
	var (
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Создать новую задачу на сервере",
		Long: `Создаёт новую задачу на сервере и добавляет её в локальный снапшот.

Новая задача всегда получает статус Incomplete.

Примеры:
  planner add --title "купить хлеб"
  planner add --title "созвон" --description "в 15:00"
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: planner login")
			}
			if title == "" {
				return fmt.Errorf("--title is required")
			}

			c := NewAPIClient(app.ServerURL)

			created, err := c.CreateTask(app.Creds.AccessToken, sharedModels.CreateTaskRequest{
				Title:       title,
				Description: description,
			})
			if err != nil {
				return err
			}
			if created.ID == "" {
				return fmt.Errorf("server returned empty id on create")
			}

			local := memory.Task{
				ID:          created.ID,
				Title:       title,
				Description: description,
				Status:      sharedModels.StatusIncomplete,
				CreatedAt:   created.CreatedAt,
				UpdatedAt:   created.CreatedAt,
			}

			app.Tasks.ReplaceAll(append(app.Tasks.List(), local))

			if err := SaveTasksToFile(app.TasksPath, app.Tasks); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created task %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&description, "description", "", "optional task description")

	return cmd
}
