package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"matomeru/internal/domain"
)

// LookupSummary returns the record for a URL, or nil when the URL has
// not been seen.
func (d *Database) LookupSummary(ctx context.Context, url string) (*domain.Summary, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("URL is empty")
	}

	query := "select id, url, answer, cost from summaries where url = ?"

	var s domain.Summary
	err := d.db.QueryRowContext(ctx, query, url).Scan(&s.ID, &s.URL, &s.Answer, &s.Cost)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	return &s, nil
}

// InsertSummary upserts the record for a URL. URL collisions resolve
// last-write-wins.
func (d *Database) InsertSummary(ctx context.Context, s domain.Summary) error {
	query := `insert into summaries (id, url, answer, cost) values (?, ?, ?, ?)
		on conflict(url) do update set id = excluded.id, answer = excluded.answer, cost = excluded.cost`

	if _, err := d.db.ExecContext(ctx, query, s.ID, s.URL, s.Answer, s.Cost); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// InsertSummaryIfAbsent inserts the record only when no record exists
// for the URL yet, and reports whether the insert happened. A false
// return means another writer won the race.
func (d *Database) InsertSummaryIfAbsent(ctx context.Context, s domain.Summary) (bool, error) {
	query := "insert or ignore into summaries (id, url, answer, cost) values (?, ?, ?, ?)"

	res, err := d.db.ExecContext(ctx, query, s.ID, s.URL, s.Answer, s.Cost)
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to fetch affected rows: %w", err)
	}

	return affected > 0, nil
}
