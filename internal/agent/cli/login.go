package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере планировщика,
// получает пару access/refresh токенов и сохраняет их в локальный
// конфигурационный файл.
//
// Обязателен флаг --email; пароль можно передать флагом --password,
// через STDIN (--password-stdin) или ввести интерактивно (скрытый ввод).
//
// Пример использования:
//
//	planner login --email test@example.com --password StrongPass123
//
// В случае успешного выполнения токены сохраняются локально, а пользователю
// выводится сообщение об успешном входе.
func NewLoginCmd(app *App) *cobra.Command {
	var (
		email             string
		password          string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить access/refresh токены)",
		Long: `Логин пользователя.

Пример:
  planner login --email test@example.com --password StrongPass123
  planner login --email test@example.com
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

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL)
			// выполняем логин пользователя
			resp, err := c.Login(email, password)
			if err != nil {
				return err
			}

			// сохраняем полученные токены в состоянии приложения
			app.Creds.AccessToken = resp.AccessToken
			app.Creds.RefreshToken = resp.RefreshToken

			// сохраняем токены в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (tokens saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password for login")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}

// readPassword читает пароль пользователя.
//
// Режимы:
//   - fromStdin=true: читает пароль из STDIN полностью (удобно для скриптов/CI);
//   - fromStdin=false: читает пароль интерактивно из терминала со скрытым вводом.
//
// Важно:
//   - если fromStdin=false, но stdin не является терминалом, функция вернёт ошибку
//     "stdin is not a terminal; use --password-stdin".
//   - пустой пароль считается ошибкой.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		pw := bytes.TrimRight(b, "\r\n")
		if len(pw) == 0 {
			return "", errors.New("empty password on stdin")
		}
		return string(pw), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pw := strings.TrimSpace(string(pwBytes))
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
