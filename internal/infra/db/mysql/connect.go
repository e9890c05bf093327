package mysql

import (
	_ "github.com/go-sql-driver/mysql"

	"github.com/bryanwahyu/feedback-analyzer/internal/infra/db"
)

const DriverName = "mysql"

// NewOpener returns an Opener that dials MySQL once per call.
func NewOpener(dsn string) db.DSNOpener {
	return db.DSNOpener{Driver: DriverName, DSN: dsn}
}
