package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The report payload is stored
// as JSONB next to the columns used for listing.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
    id,
    document_id,
    source_format,
    overall_score,
    grade,
    career_level,
    report,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	report, err := json.Marshal(analysis.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	var documentID sql.NullString
	if analysis.DocumentID != "" {
		documentID = sql.NullString{String: analysis.DocumentID, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		documentID,
		analysis.SourceFormat,
		analysis.OverallScore,
		analysis.Grade,
		analysis.CareerLevel,
		report,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis by id.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, document_id, source_format, overall_score, grade, career_level, report, created_at
FROM analyses
WHERE id = $1`

	row := r.DB.QueryRowContext(ctx, query, analysisID)
	analysis, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	return analysis, err
}

// List returns analyses newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	const query = `
SELECT id, document_id, source_format, overall_score, grade, career_level, report, created_at
FROM analyses
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, analysis)
	}
	return list, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var (
		analysis   Analysis
		documentID sql.NullString
		report     []byte
	)
	err := row.Scan(
		&analysis.ID,
		&documentID,
		&analysis.SourceFormat,
		&analysis.OverallScore,
		&analysis.Grade,
		&analysis.CareerLevel,
		&report,
		&analysis.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	analysis.DocumentID = documentID.String
	if len(report) > 0 {
		if err := json.Unmarshal(report, &analysis.Report); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal report: %w", err)
		}
	}
	return analysis, nil
}
