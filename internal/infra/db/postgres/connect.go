package postgres

import (
	_ "github.com/lib/pq"

	"github.com/bryanwahyu/feedback-analyzer/internal/infra/db"
)

const DriverName = "postgres"

func NewOpener(dsn string) db.DSNOpener {
	return db.DSNOpener{Driver: DriverName, DSN: dsn}
}
