package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    ts         TEXT NOT NULL,
    type       TEXT NOT NULL,
    item_id    INTEGER,
    amount     INTEGER,
    memo       TEXT,
    alloc_json TEXT
);

CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type);
CREATE INDEX IF NOT EXISTS idx_transactions_item ON transactions(item_id);
`
