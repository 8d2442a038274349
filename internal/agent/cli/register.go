package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере планировщика
// с использованием email и пароля. Обязателен флаг --email; пароль можно
// передать флагом --password, через STDIN (--password-stdin) или ввести
// интерактивно (скрытый ввод), если флаг не задан.
//
// Пример использования:
//
//	planner register --email test@example.com --password StrongPass123
//
// В случае успешной регистрации пользователю выводится сообщение
// об успешном завершении операции.
func NewRegisterCmd(app *App) *cobra.Command {
	var (
		email             string
		password          string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  planner register --email test@example.com --password StrongPass123
  planner register --email test@example.com
  (пароль будет запрошен интерактивно со скрытым вводом)
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := ReadPassword(cmd, passwordFromStdin)
				if err != nil {
					return err
				}
				password = pw
			}

			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			_, err := c.Register(email, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "registration successful")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}
