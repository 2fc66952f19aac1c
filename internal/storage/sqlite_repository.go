package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

const counterColumns = `id, name, start_at, created_at, color, background_image, display_format, is_widget`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens the database at path and applies pending migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]model.Counter, error) {
	return r.ListCounters(ctx, CounterListFilter{})
}

// Save replaces the stored list with counters, persisting their order.
func (r *SQLiteRepository) Save(ctx context.Context, counters []model.Counter) error {
	if err := validateList(counters); err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM counters`); err != nil {
		return fmt.Errorf("clear counters: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO counters (`+counterColumns+`, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, c := range counters {
		if _, err := stmt.ExecContext(ctx, counterArgs(c, i)...); err != nil {
			return fmt.Errorf("insert counter %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

// CreateCounter inserts in at the head of the list.
func (r *SQLiteRepository) CreateCounter(ctx context.Context, in model.Counter) error {
	if err := in.Validate(); err != nil {
		return err
	}
	var head int
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MIN(position), 0) FROM counters`).Scan(&head); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO counters (`+counterColumns+`, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		counterArgs(in, head-1)...,
	)
	return err
}

func (r *SQLiteRepository) GetCounter(ctx context.Context, id string) (model.Counter, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+counterColumns+` FROM counters WHERE id = ?`, id)
	c, err := scanCounter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Counter{}, ErrNotFound
		}
		return model.Counter{}, err
	}
	return c, nil
}

func (r *SQLiteRepository) UpdateCounter(ctx context.Context, in model.Counter) error {
	if err := in.Validate(); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE counters
		SET name = ?, start_at = ?, created_at = ?, color = ?, background_image = ?, display_format = ?, is_widget = ?
		WHERE id = ?`,
		in.Name, mustTime(in.StartAt), mustTime(in.CreatedAt), string(in.Color), in.BackgroundImage,
		string(in.DisplayFormat), boolInt(in.IsWidget), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteCounter(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM counters WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListCounters(ctx context.Context, filter CounterListFilter) ([]model.Counter, error) {
	query := `SELECT ` + counterColumns + ` FROM counters`
	args := make([]any, 0, 3)
	if filter.WidgetOnly {
		query += ` WHERE is_widget = ?`
		args = append(args, 1)
	}
	query += ` ORDER BY position ASC, created_at DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list counters: %w", err)
	}
	defer rows.Close()

	out := make([]model.Counter, 0)
	for rows.Next() {
		c, scanErr := scanCounter(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func counterArgs(c model.Counter, position int) []any {
	return []any{
		c.ID, c.Name, mustTime(c.StartAt), mustTime(c.CreatedAt), string(c.Color), c.BackgroundImage,
		string(c.DisplayFormat), boolInt(c.IsWidget), position,
	}
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCounter(s scanner) (model.Counter, error) {
	var out model.Counter
	var start, created, color, format string
	var widget int
	if err := s.Scan(&out.ID, &out.Name, &start, &created, &color, &out.BackgroundImage, &format, &widget); err != nil {
		return model.Counter{}, err
	}
	startAt, err := parseRequiredTime(start)
	if err != nil {
		return model.Counter{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return model.Counter{}, err
	}
	displayFormat, err := elapsed.ParseDisplayFormat(format)
	if err != nil {
		return model.Counter{}, err
	}
	out.StartAt = startAt
	out.CreatedAt = createdAt
	out.Color = model.Color(color)
	out.DisplayFormat = displayFormat
	out.IsWidget = widget == 1
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repository = (*SQLiteRepository)(nil)
