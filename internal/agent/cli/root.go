// Package cli реализует командный интерфейс (CLI) клиентского приложения планировщика задач.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (access/refresh токены) из конфигурационного файла;
//   - загрузку локального снапшота задач;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/config"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/memory"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу, загруженные учётные
// данные и локальное хранилище задач.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера планировщика (например, "https://127.0.0.1:8080").
	ServerURL string

	// CredsPath — путь к файлу с сохранёнными учётными данными (access/refresh токены).
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials

	// TasksPath — путь к локальному файлу снапшота задач.
	TasksPath string
	// Tasks — локальное in-memory хранилище задач (заполняется при sync).
	Tasks *memory.TasksStore
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу учётных данных, загружаются сохранённые токены
// и локальный снапшот задач.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "https://127.0.0.1:8080",
		Tasks:     memory.NewTasks(),
	}

	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Planner CLI — трекер задач (todo)",
		Long: `Planner CLI.

Команды:
  register  Регистрация нового пользователя
  login     Логин (получить access/refresh)
  refresh   Обновить access по refresh токену
  me        Кто я (проверка токена)
  add       Создать задачу
  list      Показать задачи
  update    Обновить задачу по id
  delete    Удалить задачу по id
  sync      Синхронизировать локальный снапшот задач
  version   Версия и дата сборки

Примеры:

Регистрация:
  planner register --email test@example.com --password StrongPass123

Логин:
  planner login --email test@example.com --password StrongPass123
  (сохраняет access и refresh токены в локальном конфиге)

Задачи:
  planner add --title "купить хлеб"
  planner list
  planner update <uuid> --status Complete
  planner delete <uuid>
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds

			tp, err := memory.DefaultTasksPath()
			if err != nil {
				return err
			}
			app.TasksPath = tp
			// если файла нет — стор остаётся пустым, это не ошибка
			return memory.LoadFromFile(app.TasksPath, app.Tasks)
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "https://127.0.0.1:8080", "server base URL")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewRefreshCmd(app))
	cmd.AddCommand(NewMeCmd(app))
	cmd.AddCommand(TaskCreate(app))
	cmd.AddCommand(TaskList(app))
	cmd.AddCommand(TaskUpdate(app))
	cmd.AddCommand(TaskDelete(app))
	cmd.AddCommand(TaskSync(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
