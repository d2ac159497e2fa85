package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/maxviazov/mods-catalog-service/internal/repository"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// mapSQLiteError is the SQLite counterpart of repository.MapPgError: a closed
// handle, a locked or unreadable file becomes ErrUnavailable, the rest passes through.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, sql.ErrConnDone) || strings.Contains(err.Error(), "database is closed") {
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		// extended codes carry the primary code in the low byte
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY,
			sqlite3.SQLITE_LOCKED,
			sqlite3.SQLITE_CANTOPEN,
			sqlite3.SQLITE_IOERR,
			sqlite3.SQLITE_FULL:
			return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
		}
	}
	return err
}
