// Package results records scored outcomes in a SQL database so that past
// submissions can be listed and band distributions reported.
package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"  // driver: postgres
	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/surveyscope/surveyscope/pkg/scoring"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the results database and applies pending migrations.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported results driver %q", driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("results driver %s needs a dsn", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	if driver == DriverSQLite {
		// one writer at a time
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping results db: %w", err)
	}
	if err := AutoMigrate(db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Service stores and queries scored outcomes.
type Service struct {
	db *sql.DB
}

// Row is one recorded outcome.
type Row struct {
	ID          string
	SurveyID    string
	SurveyTitle string
	Respondent  string
	Score       float64
	Band        string
	BandIndex   int
	Responses   []int
	SubmittedAt time.Time
	CreatedAt   time.Time
}

// BandCount is the number of recorded outcomes that fell in a band.
type BandCount struct {
	BandIndex int
	Band      string
	Count     int
}

// NewService creates a results Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Record stores an outcome. Recording the same submission twice is an error.
func (s *Service) Record(ctx context.Context, o *scoring.Outcome) error {
	if o == nil {
		return fmt.Errorf("record outcome: outcome is nil")
	}
	responses := make([]int, len(o.Breakdown))
	for i, a := range o.Breakdown {
		responses[i] = a.ResponseIndex
	}
	rj, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("record outcome %s: %w", o.SubmissionID, err)
	}
	submitted := o.SubmittedAt
	if submitted.IsZero() {
		submitted = time.Now()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO outcomes (id, survey_id, survey_title, respondent, score, band, band_index, responses, submitted_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.SubmissionID, o.SurveyID, o.SurveyTitle, o.Respondent, o.TotalScore,
		o.Band.Msg, o.BandIndex, string(rj), submitted.Unix(), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record outcome %s: %w", o.SubmissionID, err)
	}
	return nil
}

// List returns the most recent outcomes, newest first. An empty surveyID
// lists every survey; limit <= 0 means no limit.
func (s *Service) List(ctx context.Context, surveyID string, limit int) ([]Row, error) {
	query := `SELECT id, survey_id, survey_title, respondent, score, band, band_index, responses, submitted_at, created_at
		 FROM outcomes`
	var args []interface{}
	if surveyID != "" {
		args = append(args, surveyID)
		query += fmt.Sprintf(` WHERE survey_id = $%d`, len(args))
	}
	query += ` ORDER BY submitted_at DESC, id`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list outcomes: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var (
			r                  Row
			rj                 string
			submitted, created int64
		)
		if err := rows.Scan(&r.ID, &r.SurveyID, &r.SurveyTitle, &r.Respondent, &r.Score,
			&r.Band, &r.BandIndex, &rj, &submitted, &created); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		if err := json.Unmarshal([]byte(rj), &r.Responses); err != nil {
			return nil, fmt.Errorf("decode responses of %s: %w", r.ID, err)
		}
		r.SubmittedAt = time.Unix(submitted, 0).UTC()
		r.CreatedAt = time.Unix(created, 0).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// BandCounts returns how many outcomes of a survey fell in each band,
// ordered by band index.
func (s *Service) BandCounts(ctx context.Context, surveyID string) ([]BandCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT band_index, band, COUNT(*) FROM outcomes
		 WHERE survey_id = $1
		 GROUP BY band_index, band
		 ORDER BY band_index`,
		surveyID,
	)
	if err != nil {
		return nil, fmt.Errorf("count bands of %s: %w", surveyID, err)
	}
	defer rows.Close()

	var out []BandCount
	for rows.Next() {
		var c BandCount
		if err := rows.Scan(&c.BandIndex, &c.Band, &c.Count); err != nil {
			return nil, fmt.Errorf("scan band count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
