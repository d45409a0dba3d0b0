package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ResyncSequence moves the id sequence of a table past its largest stored id,
// so locally generated ids cannot collide with explicitly inserted ones.
//
// Only Postgres keeps a sequence that explicit inserts leave behind. MySQL
// AUTO_INCREMENT and SQLite rowid/AUTOINCREMENT advance on their own, so the
// call is a no-op there. Running it twice has the same effect as running it once.
func ResyncSequence(ctx context.Context, db *gorm.DB, table, column string) error {
	switch db.Dialector.Name() {
	case DriverPostgres:
		sql := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('"%s"', '%s'), COALESCE(MAX("%s"), 1), MAX("%s") IS NOT NULL) FROM "%s"`,
			table, column, column, column, table,
		)
		if err := db.WithContext(ctx).Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to reset sequence for %s.%s: %w", table, column, err)
		}
		return nil
	default:
		return nil
	}
}
