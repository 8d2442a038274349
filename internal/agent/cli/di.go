package cli

import (
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/api"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/memory"
)

// для тестов
var (
	NewAPIClient    = api.NewClient
	SaveTasksToFile = memory.SaveToFile
	ReadPassword    = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readPassword(cmd, fromStdin)
	}
)
