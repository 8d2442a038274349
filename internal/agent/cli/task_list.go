package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/models"
)

// TaskList создаёт CLI-команду для вывода всех задач пользователя.
//
// Команда запрашивает у сервера полный список задач текущего пользователя
// и выводит их в порядке создания. Выполненные задачи помечаются [x],
// невыполненные — [ ].
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально).
//
// Пример:
//
//	planner list
//
// Пример вывода:
//
//	[ ] 7a0a4a6a-a7bf-42c0-8cdf-2be8583d180e  купить хлеб
//	[x] 1b2f3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6d  созвон с командой — в 15:00
func TaskList(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Показать все задачи пользователя",
		Long: `Выводит все задачи текущего пользователя в порядке создания.

Пример:
  planner list
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

			if len(result.Tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
				return nil
			}

			for _, t := range result.Tasks {
				mark := "[ ]"
				if t.Status == sharedModels.StatusComplete {
					mark = "[x]"
				}
				line := fmt.Sprintf("%s %s  %s", mark, t.ID, t.Title)
				if t.Description != "" {
					line += " — " + t.Description
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	return cmd
}
