package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/core/ports/driven"
)

// Ensure historyStore implements the interface.
var _ driven.HistoryStore = (*historyStore)(nil)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const historyColumns = `id, created_at, options, original_positives, original_negatives,
	positives, negatives, styles, metadata, failures`

type historyStore struct {
	db *sql.DB
}

// Save inserts a record. Saving an existing ID is an error.
func (s *historyStore) Save(ctx context.Context, record *domain.GenerationRecord) error {
	if record == nil || record.ID == "" {
		return domain.ErrInvalidInput
	}

	options, err := json.Marshal(record.Options)
	if err != nil {
		return fmt.Errorf("marshaling options: %w", err)
	}

	lists := make([]string, 0, 5)
	for _, list := range [][]string{
		record.OriginalPositives, record.OriginalNegatives,
		record.Positives, record.Negatives, record.Styles,
	} {
		encoded, err := marshalStrings(list)
		if err != nil {
			return err
		}
		lists = append(lists, encoded)
	}

	var metadata sql.NullString
	if record.Metadata != nil {
		data, err := json.Marshal(record.Metadata)
		if err != nil {
			return fmt.Errorf("marshaling metadata: %w", err)
		}
		metadata = sql.NullString{String: string(data), Valid: true}
	}

	failures := record.Failures
	if failures == nil {
		failures = []domain.ResolutionFailure{}
	}
	failuresJSON, err := json.Marshal(failures)
	if err != nil {
		return fmt.Errorf("marshaling failures: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO generations (`+historyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.CreatedAt.UTC().Format(timeLayout), string(options),
		lists[0], lists[1], lists[2], lists[3], lists[4],
		metadata, string(failuresJSON))
	if err != nil {
		return fmt.Errorf("saving generation %s: %w", record.ID, err)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+historyColumns+` FROM generations WHERE id = ?`, id)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// List returns up to limit records, newest first.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	query := `SELECT ` + historyColumns + ` FROM generations ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing generations: %w", err)
	}
	defer rows.Close()

	var records []domain.GenerationRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.GenerationRecord, error) {
	var (
		record               domain.GenerationRecord
		createdAt, options   string
		origPos, origNeg     string
		positives, negatives string
		styles, failures     string
		metadata             sql.NullString
	)

	err := row.Scan(&record.ID, &createdAt, &options, &origPos, &origNeg,
		&positives, &negatives, &styles, &metadata, &failures)
	if err != nil {
		return nil, err
	}

	record.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at of %s: %w", record.ID, err)
	}

	decode := []struct {
		src string
		dst any
	}{
		{options, &record.Options},
		{origPos, &record.OriginalPositives},
		{origNeg, &record.OriginalNegatives},
		{positives, &record.Positives},
		{negatives, &record.Negatives},
		{styles, &record.Styles},
		{failures, &record.Failures},
	}
	for _, d := range decode {
		if err := json.Unmarshal([]byte(d.src), d.dst); err != nil {
			return nil, fmt.Errorf("decoding generation %s: %w", record.ID, err)
		}
	}

	if metadata.Valid {
		record.Metadata = &domain.GenerationMetadata{}
		if err := json.Unmarshal([]byte(metadata.String), record.Metadata); err != nil {
			return nil, fmt.Errorf("decoding metadata of %s: %w", record.ID, err)
		}
	}

	if len(record.Failures) == 0 {
		record.Failures = nil
	}
	return &record, nil
}

// marshalStrings stores nil as an empty JSON array.
func marshalStrings(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("marshaling prompts: %w", err)
	}
	return string(data), nil
}
