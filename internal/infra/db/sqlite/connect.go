// Package sqlite stores analyzed feedback in a local SQLite file. Intended
// for local development.
package sqlite

import (
	_ "github.com/mattn/go-sqlite3"

	"github.com/bryanwahyu/feedback-analyzer/internal/infra/db"
)

const DriverName = "sqlite3"

func NewOpener(path string) db.DSNOpener {
	return db.DSNOpener{Driver: DriverName, DSN: path}
}
