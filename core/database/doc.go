// Package database handles database connections for the blog store.
//
// It wraps GORM to configure SQLite (default), MySQL or Postgres connections from
// the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, tunes the connection pool and pings the
// server. SQLite connections always run with foreign keys enabled so the
// comment to post reference and its cascading delete are enforced.
//
// # Sequences
//
// ResyncSequence realigns an id sequence after rows were inserted with explicit,
// externally assigned ids. It is dialect aware and a no-op where the database
// advances its counter on its own.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	err = database.ResyncSequence(ctx, db, "posts", "id")
package database
