package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

const schema = `
CREATE TABLE IF NOT EXISTS birthdays (
	id INT NOT NULL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	birth_date CHAR(10) NOT NULL,
	description TEXT NULL,
	is_gift_required BOOLEAN NOT NULL DEFAULT FALSE,
	is_reminder_set BOOLEAN NOT NULL DEFAULT FALSE
) DEFAULT CHARSET = utf8mb4`

func LoadDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to DB: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create tables: %w", err)
	}
	return db, nil
}
