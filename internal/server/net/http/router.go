// Package http реализует маршрутизацию HTTP-слоя сервера планировщика задач.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - выполняет проверку JWT access-токенов;
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-todo-planner/internal/server/api"
	"github.com/IvanChernomyrdin/go-todo-planner/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты аутентификации под префиксом /auth;
//   - middleware логирования для всех запросов;
//   - группу защищённых JWT эндпоинтов /tasks и /me.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	// Публичные пути
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
	})
	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())
		// кто я (проверка токена клиентом)
		r.Get("/me", h.Me)
		// CRUD запросы для задач
		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", h.CreateTask)        // создание задачи
			r.Get("/", h.ListTasks)          // все задачи владельца
			r.Put("/{id}", h.UpdateTask)     // частичное обновление по id
			r.Delete("/{id}", h.DeleteTask)  // удаление по id
		})
	})

	return r
}
