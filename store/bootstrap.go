package store

import (
	"context"
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed schema.sql
var schemaSQL string

var statementHead = regexp.MustCompile(`(?m)^(CREATE TABLE |CREATE INDEX |INSERT INTO )`)

// Bootstrap creates the schema and loads the seed data on first run. The
// probe is a row count on users: if the table exists and holds rows the
// database is considered initialized and the script is skipped entirely.
// This is deliberately not a migration system; re-runs are no-ops.
func Bootstrap(ctx context.Context, g *Gateway) error {
	if count, err := g.Count(ctx, "SELECT COUNT(*) FROM users"); err == nil && count > 0 {
		return nil
	}
	// Probe error means the table does not exist yet; fall through and
	// run the script.

	for _, stmt := range splitScript(schemaSQL) {
		if _, err := g.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap statement failed: %w", err)
		}
	}
	return nil
}

// splitScript cuts the script at each statement head so drivers that reject
// multi-statement Exec still work.
func splitScript(script string) []string {
	indexes := statementHead.FindAllStringIndex(script, -1)
	if len(indexes) == 0 {
		return nil
	}

	var stmts []string
	for i, loc := range indexes {
		end := len(script)
		if i+1 < len(indexes) {
			end = indexes[i+1][0]
		}
		if stmt := strings.TrimSpace(script[loc[0]:end]); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
