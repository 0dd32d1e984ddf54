package birthday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const selectColumns = "SELECT id, name, birth_date, description, is_gift_required, is_reminder_set FROM birthdays"

// MySQLRepo stores records in a birthdays table. Mutations run in a
// transaction, so unlike FileRepo concurrent writers do not lose updates as
// long as the database serializes them.
type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBirthday(row scanner) (*Birthday, error) {
	var (
		b    Birthday
		desc sql.NullString
	)
	if err := row.Scan(&b.ID, &b.Name, &b.BirthDate, &desc, &b.IsGiftRequired, &b.IsReminderSet); err != nil {
		return nil, err
	}
	if desc.Valid {
		b.Description = &desc.String
	}
	return &b, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (r *MySQLRepo) GetAll(ctx context.Context) ([]*Birthday, error) {
	rows, err := r.DB.QueryContext(ctx, selectColumns+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query birthdays: %w", err)
	}
	defer rows.Close()

	list := make([]*Birthday, 0)
	for rows.Next() {
		b, err := scanBirthday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan birthday: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *MySQLRepo) GetByID(ctx context.Context, id int) (*Birthday, error) {
	b, err := scanBirthday(r.DB.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch birthday %d: %w", id, err)
	}
	return b, nil
}

func (r *MySQLRepo) Create(ctx context.Context, in Input) (*Birthday, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var maxID int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) FROM birthdays").Scan(&maxID); err != nil {
		return nil, fmt.Errorf("failed to read max id: %w", err)
	}

	b := in.Build(maxID + 1)
	_, err = tx.ExecContext(ctx,
		"INSERT INTO birthdays (id, name, birth_date, description, is_gift_required, is_reminder_set) VALUES (?, ?, ?, ?, ?, ?)",
		b.ID, b.Name, b.BirthDate, nullString(b.Description), b.IsGiftRequired, b.IsReminderSet,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert birthday: %w", err)
	}

	return b, tx.Commit()
}

func (r *MySQLRepo) Update(ctx context.Context, id int, patch Patch) (*Birthday, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	b, err := scanBirthday(tx.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch birthday %d: %w", id, err)
	}

	patch.Apply(b)

	_, err = tx.ExecContext(ctx,
		"UPDATE birthdays SET name = ?, birth_date = ?, description = ?, is_gift_required = ?, is_reminder_set = ? WHERE id = ?",
		b.Name, b.BirthDate, nullString(b.Description), b.IsGiftRequired, b.IsReminderSet, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update birthday %d: %w", id, err)
	}

	return b, tx.Commit()
}

func (r *MySQLRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM birthdays WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete birthday %d: %w", id, err)
	}
	return nil
}
