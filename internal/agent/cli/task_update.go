package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/memory"
	serr "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/shared/models"
)

// TaskUpdate создаёт CLI-команду для обновления задачи на сервере и локально.
//
// Команда обновляет задачу по ID на сервере и синхронизирует локальный снапшот.
// Обновлять можно только выбранные поля: title, description, status.
// В запрос попадают лишь те поля, чьи флаги были заданы (partial update):
// незаданные поля сервер не трогает, а заданный пустой --description
// очищает описание задачи.
//
// Локальное обновление выполняется в два шага:
//  1. частично обновляет локальную задачу через UpdateFromServer;
//  2. выполняет sync и ReplaceAll, чтобы updated_at точно совпал с сервером.
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально);
//   - должен быть указан хотя бы один флаг обновления: --title/--description/--status.
//
// Примеры:
//
//	planner update <uuid> --title "новый заголовок"
//	planner update <uuid> --status Complete
//	planner update <uuid> --description ""
//	(пустое значение очищает описание)
//
// В случае успеха выводит: "updated task <id>".
func TaskUpdate(app *App) *cobra.Command {
	var (
		title       string
		description string
		status      string

		setTitle, setDescription, setStatus bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить задачу на сервере и локально",
		Long: `Обновляет задачу по ID на сервере и обновляет локальный снапшот.

Частичное обновление:
  в запрос попадают только заданные флаги;
  --description "" очищает описание.

Примеры:
  planner update <uuid> --title "новый заголовок"
  planner update <uuid> --status Complete
  planner update <uuid> --title "t" --description "d"
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: planner login")
			}
			id := args[0]

			// PATCH поля
			var (
				titlePtr       *string
				descriptionPtr *string
				statusPtr      *string
			)

			if setTitle {
				titlePtr = &title
			}
			if setDescription {
				descriptionPtr = &description
			}
			if setStatus {
				if status != models.StatusIncomplete && status != models.StatusComplete {
					return fmt.Errorf("--status must be %s or %s", models.StatusIncomplete, models.StatusComplete)
				}
				statusPtr = &status
			}

			if !setTitle && !setDescription && !setStatus {
				return fmt.Errorf("nothing to update: set at least one flag")
			}

			// Запрос на сервер
			c := NewAPIClient(app.ServerURL)
			if err := c.UpdateTask(app.Creds.AccessToken, id, models.UpdateTaskRequest{
				Title:       titlePtr,
				Description: descriptionPtr,
				Status:      statusPtr,
			}); err != nil {
				return err
			}

			// Локально обновляем те же поля. Если задачи нет в снапшоте —
			// не страшно, её подтянет sync ниже.
			if err := app.Tasks.UpdateFromServer(id, titlePtr, descriptionPtr, statusPtr); err != nil &&
				!errors.Is(err, serr.ErrTaskNotFound) {
				return err
			}

			// Чтобы updated_at всегда совпал с сервером — делаем sync.
			synced, err := c.Sync(app.Creds.AccessToken)
			if err != nil {
				return fmt.Errorf("update ok, but sync failed: %w", err)
			}

			tasks := make([]memory.Task, 0, len(synced.Tasks))
			for _, t := range synced.Tasks {
				tasks = append(tasks, memory.Task{
					ID:          t.ID,
					Title:       t.Title,
					Description: t.Description,
					Status:      t.Status,
					CreatedAt:   t.CreatedAt,
					UpdatedAt:   t.UpdatedAt,
				})
			}
			// синхронизируем мапу
			app.Tasks.ReplaceAll(tasks)

			if err := SaveTasksToFile(app.TasksPath, app.Tasks); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated task %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description (empty value clears it)")
	cmd.Flags().StringVar(&status, "status", "", "new status: Incomplete|Complete")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		setTitle = cmd.Flags().Changed("title")
		setDescription = cmd.Flags().Changed("description")
		setStatus = cmd.Flags().Changed("status")
	}

	return cmd
}
