package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCmd создаёт CLI-команду для проверки текущего access токена.
//
// Команда запрашивает у сервера информацию о пользователе, ассоциированном
// с сохранённым access токеном, и выводит его идентификатор и email.
//
// Пример использования:
//
//	planner me
func NewMeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Показать текущего пользователя (проверка токена)",
		Long: `Проверяет access токен и выводит данные текущего пользователя.

Пример:
  planner me
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: planner login")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Me(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user_id=%s\nemail=%s\n", resp.UserID, resp.Email)
			return nil
		},
	}

	return cmd
}
