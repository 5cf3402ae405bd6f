package history

import (
	"fmt"
	"strings"
	"time"
)

const (
	timeLayout = "2006-01-02T15:04:05Z"
	dateLayout = "2006-01-02"
)

// Run is one successful chart generation. Samples themselves are never stored.
type Run struct {
	ID         int64
	CreatedAt  time.Time
	SourcePath string
	Format     string // "csv" or "text"
	Samples    int
	Skipped    int
	OutputPath string
}

type Options struct {
	Format string // "" = all, "csv", "text"
	Since  time.Time // zero = no filter
	Limit  int
}

// ParseSince reads a YYYY-MM-DD date as local midnight.
func ParseSince(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (YYYY-MM-DD)", s)
	}
	return t, nil
}

// Record stores r and returns its id. A zero CreatedAt is stamped with now.
func (d *DB) Record(r Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	res, err := d.db.Exec(
		`INSERT INTO runs (created_at, source_path, format, samples, skipped, output_path)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.CreatedAt.UTC().Format(timeLayout),
		r.SourcePath,
		r.Format,
		r.Samples,
		r.Skipped,
		r.OutputPath,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// List returns recorded runs, newest first.
func (d *DB) List(opts Options) ([]Run, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}

	var conditions []string
	var args []interface{}

	if opts.Format != "" {
		conditions = append(conditions, "format = ?")
		args = append(args, opts.Format)
	}

	if !opts.Since.IsZero() {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, opts.Since.UTC().Format(timeLayout))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, source_path, format, samples, skipped, output_path
		FROM runs
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, where)
	args = append(args, opts.Limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &created, &r.SourcePath, &r.Format, &r.Samples, &r.Skipped, &r.OutputPath); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(timeLayout, created)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
