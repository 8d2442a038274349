package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/api"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/config"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/memory"
)

func TestTaskDelete_Success_RemovesFromLocalStore(t *testing.T) {
	withTaskDeps(t, func() {
		deleteCalled := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Fatalf("expected DELETE, got %s", r.Method)
			}
			if r.URL.Path != "/tasks/id1" {
				t.Fatalf("expected /tasks/id1, got %s", r.URL.Path)
			}
			deleteCalled++
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }

		saved := false
		cli.SaveTasksToFile = func(_ string, _ *memory.TasksStore) error { saved = true; return nil }

		store := memory.NewTasks()
		store.ReplaceAll([]memory.Task{{ID: "id1", Title: "t", Status: "Incomplete"}})

		app := &cli.App{
			ServerURL: srv.URL,
			TasksPath: filepath.Join(t.TempDir(), "tasks.json"),
			Tasks:     store,
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.TaskDelete(app)
		cmd.SetArgs([]string{"id1"})

		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		if deleteCalled != 1 {
			t.Fatalf("expected DELETE called once, got %d", deleteCalled)
		}
		if !saved {
			t.Fatalf("expected SaveToFile called")
		}
		if _, err := app.Tasks.Get("id1"); err == nil {
			t.Fatalf("expected task removed from local store")
		}
		if !strings.Contains(out.String(), "deleted task id1") {
			t.Fatalf("unexpected output: %s", out.String())
		}
	})
}

func TestTaskDelete_Success_NotInLocalStore_StillOK(t *testing.T) {
	withTaskDeps(t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }
		cli.SaveTasksToFile = func(_ string, _ *memory.TasksStore) error { return nil }

		// локально задачи нет — снапшот устарел, это не ошибка
		app := &cli.App{
			ServerURL: srv.URL,
			TasksPath: filepath.Join(t.TempDir(), "tasks.json"),
			Tasks:     memory.NewTasks(),
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.TaskDelete(app)
		cmd.SetArgs([]string{"id1"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}
	})
}

func TestTaskDelete_Fails_NoAccessToken(t *testing.T) {
	withTaskDeps(t, func() {
		app := &cli.App{
			ServerURL: "http://example",
			Tasks:     memory.NewTasks(),
			Creds:     &config.Credentials{AccessToken: ""},
		}

		cmd := cli.TaskDelete(app)
		cmd.SetArgs([]string{"id1"})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "no access_token") {
			t.Fatalf("expected no access_token error, got: %v", err)
		}
	})
}

func TestTaskDelete_Fails_ServerNotFound(t *testing.T) {
	withTaskDeps(t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }
		cli.SaveTasksToFile = func(_ string, _ *memory.TasksStore) error {
			t.Fatalf("SaveToFile must not be called on server error")
			return nil
		}

		store := memory.NewTasks()
		store.ReplaceAll([]memory.Task{{ID: "id1", Title: "t", Status: "Incomplete"}})

		app := &cli.App{
			ServerURL: srv.URL,
			TasksPath: filepath.Join(t.TempDir(), "tasks.json"),
			Tasks:     store,
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.TaskDelete(app)
		cmd.SetArgs([]string{"id1"})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected not found error, got: %v", err)
		}

		// локальная задача при ошибке сервера остаётся на месте
		if _, err := app.Tasks.Get("id1"); err != nil {
			t.Fatalf("expected task to remain in local store, err=%v", err)
		}
	})
}
