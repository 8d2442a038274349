// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/errors"
)

// mapDBError приводит ошибку драйвера к доменной.
//
// Ошибки соединения (обрыв, таймаут) — это ErrUnavailable: временная
// недоступность хранилища, её нельзя смешивать с NotFound/InvalidCredentials.
// Всё остальное непредвиденное — ErrInternal.
// sql.ErrNoRows и unique_violation разбираются на местах вызова,
// потому что их доменный смысл зависит от запроса.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// ошибка пришла от самого постгреса — соединение живо
		return serr.ErrInternal
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return serr.ErrUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return serr.ErrUnavailable
	}

	return serr.ErrInternal
}
