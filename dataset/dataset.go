// Package dataset loads the labeled disaster-response message table.
package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/abadojack/whatlanggo"
	"go.uber.org/zap"
)

// Columns that are not category labels.
var reserved = map[string]struct{}{
	"id":       {},
	"message":  {},
	"original": {},
	"genre":    {},
}

// Dataset is the in-memory form of the message table. Labels holds one
// 0/1 slice per category, aligned with Messages.
type Dataset struct {
	Messages []string
	Original []string
	Genres   []string

	Categories []string
	Labels     map[string][]int
}

// Load reads every row of the named table. Category columns are
// discovered from the schema: anything that is not id, message,
// original, or genre.
func Load(ctx context.Context, log *zap.SugaredLogger, db *sql.DB, table string) (*Dataset, error) {
	if !validIdent(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Labels: make(map[string][]int)}
	for _, col := range cols {
		if _, ok := reserved[col]; ok {
			continue
		}
		ds.Categories = append(ds.Categories, col)
	}
	if len(ds.Categories) == 0 {
		return nil, fmt.Errorf("table %s has no category columns", table)
	}

	vals := make([]any, len(cols))
	for i := range vals {
		vals[i] = new(sql.NullString)
	}

	row := 0
	for rows.Next() {
		row++
		if err := rows.Scan(vals...); err != nil {
			log.Warnw("skipping unreadable row", "row", row, "error", err)
			continue
		}

		labels := make(map[string]int, len(ds.Categories))
		var message, original, genre string
		bad := false
		for i, col := range cols {
			v := vals[i].(*sql.NullString)
			switch col {
			case "id":
				// unused beyond referential consistency
			case "message":
				message = v.String
			case "original":
				original = v.String
			case "genre":
				genre = v.String
			default:
				n, err := strconv.Atoi(strings.TrimSpace(v.String))
				if err != nil {
					log.Warnw("skipping row with malformed label", "row", row, "column", col)
					bad = true
				} else if n >= 1 {
					// a handful of rows carry a 2; treat as positive
					labels[col] = 1
				}
			}
			if bad {
				break
			}
		}
		if bad || message == "" {
			continue
		}

		ds.Messages = append(ds.Messages, message)
		ds.Original = append(ds.Original, original)
		ds.Genres = append(ds.Genres, genre)
		for _, cat := range ds.Categories {
			ds.Labels[cat] = append(ds.Labels[cat], labels[cat])
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Infow("dataset loaded", "rows", len(ds.Messages), "categories", len(ds.Categories))
	return ds, nil
}

// CategoryCounts tallies positive samples per category, in category order.
func (ds *Dataset) CategoryCounts() []int {
	counts := make([]int, len(ds.Categories))
	for i, cat := range ds.Categories {
		for _, label := range ds.Labels[cat] {
			if label == 1 {
				counts[i]++
			}
		}
	}
	return counts
}

// DetectLanguages guesses the source language of each original
// (untranslated) message. Empty originals are skipped.
func (ds *Dataset) DetectLanguages() []string {
	langs := make([]string, 0, len(ds.Original))
	for _, original := range ds.Original {
		if strings.TrimSpace(original) == "" {
			continue
		}
		info := whatlanggo.Detect(original)
		langs = append(langs, whatlanggo.LangToString(info.Lang))
	}
	return langs
}

func validIdent(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
