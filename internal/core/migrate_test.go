// AngelaMos | 2026
// migrate_test.go

package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/testdb"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db := testdb.New(t)

	version, err := core.Migrate(db, "")
	if err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
	if version != 1 {
		t.Fatalf("version = %d, want 1", version)
	}

	var n int
	if err := db.DB.GetContext(context.Background(), &n,
		`SELECT COUNT(*) FROM translation_keys`); err != nil {
		t.Fatalf("query migrated table: %v", err)
	}
}

func TestIsDuplicateKeySQLite(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	insert := `INSERT INTO translation_keys (id, "key", value, lang, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)`

	if _, err := db.DB.ExecContext(ctx, insert, "1", "app.title", "A", "fr-FR", "u"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	_, err := db.DB.ExecContext(ctx, insert, "2", "app.title", "B", "fr-FR", "u")
	if !core.IsDuplicateKey(err) {
		t.Fatalf("IsDuplicateKey(%v) = false, want true", err)
	}
}

func TestInTxRollsBack(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := core.InTx(ctx, db.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO survey_responses (id, compte_id, division, periode, submitted_at)
			 VALUES ('r1', 'c1', 'ALS PHARMA', '2025-T1', CURRENT_TIMESTAMP)`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("InTx() error = %v, want boom", err)
	}

	var n int
	if err := db.DB.GetContext(ctx, &n, `SELECT COUNT(*) FROM survey_responses`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("rows after rollback = %d, want 0", n)
	}
}
