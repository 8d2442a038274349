// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные (одинаковая и для неизвестного email, и для неверного пароля)
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Хранилище недоступно (проблемы с соединением, таймауты) — не домен!
	ErrUnavailable = errors.New("storage unavailable")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден (в том числе чужая задача — не палим её существование)
	ErrNotFound = errors.New("not found")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// только для задач
var (
	// tasks
	ErrUserIDEmpty   = errors.New("user id cannot be empty")
	ErrUnknownStatus = errors.New("unknown task status")
	ErrTaskNotFound  = errors.New("task not found locally")
)
