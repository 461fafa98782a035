package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/narscore/pkg/nars/analytics"
	"github.com/cognicore/narscore/pkg/nars/memory"
)

// schema mirrors pkg/korel/store/sqlite's initSchema shape: plain
// CREATE TABLE IF NOT EXISTS statements run once on open, so repeated
// snapshots of the same db file migrate forward without a separate tool.
const schema = `
CREATE TABLE IF NOT EXISTS concepts (
	term_name TEXT PRIMARY KEY,
	priority REAL NOT NULL,
	belief_count INTEGER NOT NULL,
	question_count INTEGER NOT NULL,
	goal_count INTEGER NOT NULL,
	task_link_count INTEGER NOT NULL,
	term_link_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS rule_firings (
	rule_name TEXT PRIMARY KEY,
	fired_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS summary (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	concept_count INTEGER NOT NULL,
	total_beliefs INTEGER NOT NULL,
	total_questions INTEGER NOT NULL,
	total_goals INTEGER NOT NULL,
	average_budget REAL NOT NULL,
	pending_new_tasks INTEGER NOT NULL,
	novel_tasks INTEGER NOT NULL
);
`

func openSnapshotDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// writeSnapshot replaces every row with the current state of mem and
// report: a snapshot is a full point-in-time replace, not an append-only
// log (spec.md §4.3 "Snapshot all current facts").
func writeSnapshot(ctx context.Context, db *sql.DB, mem *memory.Memory, report analytics.Snapshot) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM concepts", "DELETE FROM rule_firings", "DELETE FROM summary"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear snapshot tables: %w", err)
		}
	}

	for _, c := range mem.ConceptBagSnapshot() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO concepts(term_name, priority, belief_count, question_count, goal_count, task_link_count, term_link_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.TermName, c.Priority, c.BeliefCount, c.QuestionCount, c.GoalCount, c.TaskLinkCount, c.TermLinkCount)
		if err != nil {
			return fmt.Errorf("insert concept %s: %w", c.TermName, err)
		}
	}

	for rule, count := range report.RuleFirings {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO rule_firings(rule_name, fired_count) VALUES (?, ?)", rule, count); err != nil {
			return fmt.Errorf("insert rule firing %s: %w", rule, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO summary(id, concept_count, total_beliefs, total_questions, total_goals, average_budget, pending_new_tasks, novel_tasks)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		report.ConceptCount, report.TotalBeliefs, report.TotalQuestions, report.TotalGoals,
		report.AverageBudget, report.PendingNewTasks, report.NovelTasks)
	if err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}

	return tx.Commit()
}
