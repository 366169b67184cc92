// Package sqlite implements the PlanCatalog port on SQLite. Each
// collector run is recorded as a runs row plus its plans and thoughts,
// preserving the aggregate's directory/file/thought order through
// explicit position columns.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/plansift/plansift-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/plansift/plansift-cli/internal/core/domain"
	"github.com/plansift/plansift-cli/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Ensure Catalog implements the interface.
var _ driven.PlanCatalog = (*Catalog)(nil)

// Catalog is a SQLite-backed run catalog.
type Catalog struct {
	db   *sql.DB
	path string
}

// NewCatalog opens (creating if needed) a catalog at the given path.
func NewCatalog(path string) (*Catalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	// WAL mode: the watch loop may record runs while a reader inspects.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	c := &Catalog{db: db, path: path}
	if err := c.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return c, nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Catalog) Path() string {
	return c.path
}

// RecordRun stores an aggregate as a new run and returns the run ID.
func (c *Catalog) RecordRun(ctx context.Context, agg *domain.Aggregate) (string, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	runID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, base_directory, processed_at, total_directories, total_plans, error_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID,
		agg.Metadata.BaseDirectory,
		agg.Metadata.ProcessedAt,
		agg.Metadata.TotalDirectories,
		agg.Metadata.TotalPlans,
		len(agg.Errors),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	position := 0
	for _, dir := range agg.Plans.Keys() {
		dirPlans, _ := agg.Plans.Get(dir)
		for _, name := range dirPlans.Keys() {
			plan, _ := dirPlans.Get(name)
			if err := c.insertPlan(ctx, tx, runID, position, plan); err != nil {
				return "", err
			}
			position++
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

func (c *Catalog) insertPlan(ctx context.Context, tx *sql.Tx, runID string, position int, plan domain.Plan) error {
	planID, err := json.Marshal(plan.PlanID)
	if err != nil {
		return fmt.Errorf("encoding plan id: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO plans (run_id, plan_id, folder, file_name, position) VALUES (?, ?, ?, ?, ?)`,
		runID, string(planID), plan.Folder, plan.FileName, position,
	)
	if err != nil {
		return fmt.Errorf("inserting plan %s/%s: %w", plan.Folder, plan.FileName, err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading plan row id: %w", err)
	}

	for i, thought := range plan.Thoughts {
		factors, err := json.Marshal(thought.RealTimeFactors)
		if err != nil {
			return fmt.Errorf("encoding factors: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO thoughts (plan_row_id, timestamp, content, real_time_factors, relevance_score, confidence_score, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rowID, thought.Timestamp, thought.Content, string(factors),
			thought.RelevanceScore, thought.ConfidenceScore, i,
		)
		if err != nil {
			return fmt.Errorf("inserting thought: %w", err)
		}
	}
	return nil
}

// Runs lists recorded runs, most recent first.
func (c *Catalog) Runs(ctx context.Context) ([]domain.RunRecord, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, base_directory, processed_at, total_directories, total_plans, error_count
		 FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunRecord
	for rows.Next() {
		var r domain.RunRecord
		if err := rows.Scan(&r.ID, &r.BaseDirectory, &r.ProcessedAt, &r.TotalDirectories, &r.TotalPlans, &r.ErrorCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// PlansForRun returns the plans recorded under one run, in stored order.
func (c *Catalog) PlansForRun(ctx context.Context, runID string) ([]domain.Plan, error) {
	var exists int
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking run: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("run %s: %w", runID, domain.ErrNotFound)
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT id, plan_id, folder, file_name FROM plans WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	type planRow struct {
		rowID int64
		plan  domain.Plan
	}
	var planRows []planRow
	for rows.Next() {
		var pr planRow
		var planID string
		if err := rows.Scan(&pr.rowID, &planID, &pr.plan.Folder, &pr.plan.FileName); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		if planID != jsonNull {
			if err := json.Unmarshal([]byte(planID), &pr.plan.PlanID); err != nil {
				return nil, fmt.Errorf("decoding plan id: %w", err)
			}
		}
		planRows = append(planRows, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, 0, len(planRows))
	for _, pr := range planRows {
		thoughts, err := c.thoughtsForPlan(ctx, pr.rowID)
		if err != nil {
			return nil, err
		}
		pr.plan.Thoughts = thoughts
		plans = append(plans, pr.plan)
	}
	return plans, nil
}

func (c *Catalog) thoughtsForPlan(ctx context.Context, planRowID int64) ([]domain.Thought, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT timestamp, content, real_time_factors, relevance_score, confidence_score
		 FROM thoughts WHERE plan_row_id = ? ORDER BY position`, planRowID)
	if err != nil {
		return nil, fmt.Errorf("querying thoughts: %w", err)
	}
	defer rows.Close()

	var thoughts []domain.Thought
	for rows.Next() {
		var t domain.Thought
		var factors string
		if err := rows.Scan(&t.Timestamp, &t.Content, &factors, &t.RelevanceScore, &t.ConfidenceScore); err != nil {
			return nil, fmt.Errorf("scanning thought: %w", err)
		}
		if err := json.Unmarshal([]byte(factors), &t.RealTimeFactors); err != nil {
			return nil, fmt.Errorf("decoding factors: %w", err)
		}
		thoughts = append(thoughts, t)
	}
	return thoughts, rows.Err()
}

// migrate runs all pending migrations.
func (c *Catalog) migrate(fsys embed.FS) error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := c.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := c.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := c.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
