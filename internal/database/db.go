package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// dsn assembles the driver connection string.  clientFoundRows makes the
// server report matched rows instead of changed rows, so an UPDATE that
// re-submits a row's current values still counts as hitting the row; the
// repositories rely on that to tell a missing row from a no-op edit.
func dsn(user, pass, host, port, name string) string {
	cred := user
	if pass != "" {
		cred = user + ":" + pass
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
		cred, host, port, name)
}

// Open connects to MySQL and verifies the connection before returning the
// pool.  DATE and DATETIME columns scan into time.Time (parseTime=true) and
// all times are normalized to UTC.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(user, pass, host, port, name))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
