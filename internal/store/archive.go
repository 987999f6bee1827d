package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wishplan/internal/model"
	"wishplan/internal/planner"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Archive mirrors the append-only transaction log into SQLite so
// history views can filter without rescanning the JSON document. It is
// derived data: losing it costs nothing, the JSON log rebuilds it.
type Archive struct {
	db *sql.DB
}

// ArchivePath returns the archive location next to the given state file.
func ArchivePath(statePath string) string {
	return filepath.Join(filepath.Dir(statePath), "archive.db")
}

// OpenArchive opens or creates the archive database at the given path.
func OpenArchive(dbPath string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Append stores one ledger transaction.
func (a *Archive) Append(tx model.Transaction) error {
	allocJSON := ""
	if len(tx.Alloc) > 0 {
		data, err := json.Marshal(tx.Alloc)
		if err != nil {
			return fmt.Errorf("encoding allocation payload: %w", err)
		}
		allocJSON = string(data)
	}

	_, err := a.db.Exec(`INSERT INTO transactions (ts, type, item_id, amount, memo, alloc_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		tx.TS.UTC().Format(time.RFC3339Nano), string(tx.Type), tx.ItemID, tx.Amount, tx.Memo, allocJSON,
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

// Count returns the number of archived transactions.
func (a *Archive) Count() (int, error) {
	var count int
	err := a.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}

// Rebuild replaces the archive contents with the given log. Used when
// the archive is missing or has drifted from the JSON document.
func (a *Archive) Rebuild(txs []model.Transaction) error {
	dbTx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = dbTx.Rollback() }()

	if _, err := dbTx.Exec("DELETE FROM transactions"); err != nil {
		return err
	}

	for _, tx := range txs {
		allocJSON := ""
		if len(tx.Alloc) > 0 {
			data, err := json.Marshal(tx.Alloc)
			if err != nil {
				return fmt.Errorf("encoding allocation payload: %w", err)
			}
			allocJSON = string(data)
		}
		_, err := dbTx.Exec(`INSERT INTO transactions (ts, type, item_id, amount, memo, alloc_json)
			VALUES (?, ?, ?, ?, ?, ?)`,
			tx.TS.UTC().Format(time.RFC3339Nano), string(tx.Type), tx.ItemID, tx.Amount, tx.Memo, allocJSON,
		)
		if err != nil {
			return err
		}
	}

	return dbTx.Commit()
}

// Query returns matching transactions newest first. Type narrowing
// happens in SQL; item matching for allocation payloads happens in Go
// because the payload is stored as JSON.
func (a *Archive) Query(f planner.TxFilter) ([]model.Transaction, error) {
	query := "SELECT ts, type, item_id, amount, memo, alloc_json FROM transactions"
	var args []any
	if f.Type != "" {
		query += " WHERE type = ?"
		args = append(args, string(f.Type))
	}
	query += " ORDER BY seq DESC"

	rows, err := a.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var tsStr, txType, allocJSON string
		var memo sql.NullString
		var itemID, amount sql.NullInt64

		if err := rows.Scan(&tsStr, &txType, &itemID, &amount, &memo, &allocJSON); err != nil {
			return nil, err
		}

		tx := model.Transaction{Type: model.TxType(txType)}
		tx.TS, _ = time.Parse(time.RFC3339Nano, tsStr)
		if itemID.Valid {
			tx.ItemID = itemID.Int64
		}
		if amount.Valid {
			tx.Amount = amount.Int64
		}
		if memo.Valid {
			tx.Memo = memo.String
		}
		if allocJSON != "" {
			if err := json.Unmarshal([]byte(allocJSON), &tx.Alloc); err != nil {
				return nil, fmt.Errorf("decoding allocation payload: %w", err)
			}
		}

		if !f.Matches(tx) {
			continue
		}
		out = append(out, tx)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out, rows.Err()
}
