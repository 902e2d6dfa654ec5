// Package export writes a SQLite snapshot of the evaluated catalog for
// downstream tooling. The engine never reads the snapshot back.
package export

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/quillfox/dreambuild/internal/catalog"
	"github.com/quillfox/dreambuild/internal/score"
)

const schema = `
CREATE TABLE IF NOT EXISTS builds (
	id               TEXT PRIMARY KEY,
	character        TEXT NOT NULL,
	name             TEXT NOT NULL,
	source           TEXT NOT NULL,
	grade            TEXT NOT NULL,
	total            INTEGER NOT NULL,
	synergy          INTEGER NOT NULL,
	rarity           INTEGER NOT NULL,
	validity         INTEGER NOT NULL,
	completeness     INTEGER NOT NULL,
	raw_synergy      INTEGER NOT NULL,
	weighted_synergy INTEGER NOT NULL,
	complexity       TEXT NOT NULL,
	exported_at      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_builds_character ON builds(character);
CREATE INDEX IF NOT EXISTS idx_builds_total ON builds(total DESC);
`

// Snapshot evaluates every build in the catalog and writes one row per
// build to a SQLite database at path. An existing database is replaced.
// Returns the number of rows written.
func Snapshot(cat *catalog.Catalog, path string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("replace snapshot: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return 0, fmt.Errorf("open snapshot db: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return 0, fmt.Errorf("migrate snapshot: %w", err)
	}

	engine := score.NewEngine(cat)
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	rows := 0
	for _, character := range cat.CharacterNames() {
		for _, b := range cat.BuildsFor(character) {
			breakdown, err := engine.UnifiedScore(b)
			if err != nil {
				return 0, err
			}
			id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
			_, err = tx.Exec(
				`INSERT INTO builds (id, character, name, source, grade, total, synergy, rarity,
				                     validity, completeness, raw_synergy, weighted_synergy, complexity, exported_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, character, b.Name, b.Source.String(), score.Grade(breakdown.Total),
				breakdown.Total, breakdown.Synergy, breakdown.Rarity,
				breakdown.Validity, breakdown.Completeness, breakdown.RawSynergy,
				score.WeightedSynergy(b), score.Complexity(b), now)
			if err != nil {
				return 0, fmt.Errorf("insert build %s: %w", b.Name, err)
			}
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return rows, nil
}
