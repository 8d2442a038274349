package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/api"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/config"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/agent/memory"
)

func TestTaskUpdate_Fails_NoAccessToken(t *testing.T) {
	withTaskDeps(t, func() {
		app := &cli.App{
			ServerURL: "http://example",
			Tasks:     memory.NewTasks(),
			Creds:     &config.Credentials{AccessToken: ""},
		}
		cmd := cli.TaskUpdate(app)
		cmd.SetArgs([]string{"id1", "--title", "x"})
		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "no access_token") {
			t.Fatalf("expected no access_token error, got: %v", err)
		}
	})
}

func TestTaskUpdate_Fails_NothingToUpdate(t *testing.T) {
	withTaskDeps(t, func() {
		app := &cli.App{
			ServerURL: "http://example",
			Tasks:     memory.NewTasks(),
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.TaskUpdate(app)
		cmd.SetArgs([]string{"id1"}) // no flags
		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "nothing to update") {
			t.Fatalf("expected nothing to update error, got: %v", err)
		}
	})
}

func TestTaskUpdate_Fails_BadStatus(t *testing.T) {
	withTaskDeps(t, func() {
		app := &cli.App{
			ServerURL: "http://example",
			Tasks:     memory.NewTasks(),
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.TaskUpdate(app)
		// статус валидируется до похода на сервер, регистр важен
		cmd.SetArgs([]string{"id1", "--status", "done"})
		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "--status must be") {
			t.Fatalf("expected bad status error, got: %v", err)
		}
	})
}

func TestTaskUpdate_Success_StatusOnly_UpdatesLocalAndSyncs(t *testing.T) {
	withTaskDeps(t, func() {
		// --- fake server ---
		// 1) PUT /tasks/id1 -> 204
		// 2) GET /tasks -> returns list
		now := time.Now().Format(time.RFC3339Nano)

		putCalled := 0
		getCalled := 0

		// capture request body of PUT
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPut && r.URL.Path == "/tasks/id1":
				putCalled++
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(http.StatusNoContent)
				return
			case r.Method == http.MethodGet && r.URL.Path == "/tasks":
				getCalled++
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"tasks":[
						{"id":"id1","title":"купить хлеб","description":"","status":"Complete","created_at":"` + now + `","updated_at":"` + now + `"}
					]
				}`))
				return
			default:
				w.WriteHeader(http.StatusNotFound)
				return
			}
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }

		saved := false
		cli.SaveTasksToFile = func(_ string, _ *memory.TasksStore) error { saved = true; return nil }

		// local store has old status
		store := memory.NewTasks()
		store.ReplaceAll([]memory.Task{{ID: "id1", Title: "купить хлеб", Status: "Incomplete"}})

		app := &cli.App{
			ServerURL: srv.URL,
			TasksPath: filepath.Join(t.TempDir(), "tasks.json"),
			Tasks:     store,
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.TaskUpdate(app)
		cmd.SetArgs([]string{"id1", "--status", "Complete"})

		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		if putCalled != 1 {
			t.Fatalf("expected PUT called once, got %d", putCalled)
		}
		if getCalled != 1 {
			t.Fatalf("expected GET /tasks called once (sync), got %d", getCalled)
		}
		if !saved {
			t.Fatalf("expected SaveToFile called")
		}

		// в JSON должен попасть только status — omitempty прячет nil-поля
		if gotBody["status"] != "Complete" {
			t.Fatalf("status mismatch, got=%v", gotBody["status"])
		}
		if _, ok := gotBody["title"]; ok {
			t.Fatalf("title should not be present in request")
		}
		if _, ok := gotBody["description"]; ok {
			t.Fatalf("description should not be present in request")
		}

		// after sync ReplaceAll, store should contain id1 status Complete
		task, err := app.Tasks.Get("id1")
		if err != nil {
			t.Fatalf("expected task in store, err=%v", err)
		}
		if task.Status != "Complete" {
			t.Fatalf("expected status Complete, got %q", task.Status)
		}

		if !strings.Contains(out.String(), "updated task id1") {
			t.Fatalf("unexpected output: %s", out.String())
		}
	})
}

func TestTaskUpdate_Success_ClearDescription_SendsEmptyString(t *testing.T) {
	withTaskDeps(t, func() {
		now := time.Now().Format(time.RFC3339Nano)

		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPut && r.URL.Path == "/tasks/id1":
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(http.StatusNoContent)
				return
			case r.Method == http.MethodGet && r.URL.Path == "/tasks":
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"tasks":[{"id":"id1","title":"t","description":"","status":"Incomplete","created_at":"` + now + `","updated_at":"` + now + `"}]}`))
				return
			default:
				w.WriteHeader(http.StatusNotFound)
				return
			}
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }
		cli.SaveTasksToFile = func(_ string, _ *memory.TasksStore) error { return nil }

		store := memory.NewTasks()
		store.ReplaceAll([]memory.Task{{ID: "id1", Title: "t", Description: "старое", Status: "Incomplete"}})

		app := &cli.App{
			ServerURL: srv.URL,
			TasksPath: filepath.Join(t.TempDir(), "tasks.json"),
			Tasks:     store,
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.TaskUpdate(app)
		// --description "" — явная очистка, поле должно уйти в JSON пустой строкой
		cmd.SetArgs([]string{"id1", "--description", ""})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		v, ok := gotBody["description"]
		if !ok {
			t.Fatalf("description must be present in request")
		}
		if v != "" {
			t.Fatalf("expected empty description, got %v", v)
		}
	})
}

func TestTaskUpdate_Fails_UpdateOkButSyncFails(t *testing.T) {
	withTaskDeps(t, func() {
		// PUT ok, GET fails
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPut && r.URL.Path == "/tasks/id1" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			if r.Method == http.MethodGet && r.URL.Path == "/tasks" {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"boom"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }
		cli.SaveTasksToFile = func(_ string, _ *memory.TasksStore) error {
			t.Fatalf("SaveToFile must not be called if sync failed")
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

		cmd := cli.TaskUpdate(app)
		cmd.SetArgs([]string{"id1", "--title", "X"})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "update ok, but sync failed") {
			t.Fatalf("expected sync failed error, got: %v", err)
		}
	})
}
