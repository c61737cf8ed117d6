package zeta

import (
	"database/sql"
	"fmt"
	"math/big"

	// SQLite driver, registered as "sqlite3".
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/zetafn/cplx"
)

// DefaultStorePath is the conventional on-disk location of the
// integer-zeta store.
const DefaultStorePath = "db-zeta.db"

const (
	createStoreSQL = `CREATE TABLE IF NOT EXISTS zeta (
	idx  INTEGER PRIMARY KEY,
	val  TEXT    NOT NULL,
	prec INTEGER NOT NULL
)`
	loadValueSQL = `SELECT val, prec FROM zeta WHERE idx = ?`
	saveValueSQL = `INSERT INTO zeta (idx, val, prec) VALUES (?, ?, ?)
	ON CONFLICT(idx) DO UPDATE SET val = excluded.val, prec = excluded.prec
	WHERE excluded.prec > zeta.prec`
)

// Store persists finished integer-zeta values in a SQLite database.
// Rows keep decimal strings of ζ(idx)−1, so the digits that matter
// survive the round-trip even though ζ(idx) itself hugs 1 for large
// idx. A Store never fails an evaluation: lookups degrade to a miss
// and writes are best-effort.
type Store struct {
	db *sql.DB
}

// OpenStore opens the store at path, creating the file and schema when
// absent.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("zeta: open store %q: %w", path, err)
	}
	if _, err := db.Exec(createStoreSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("zeta: init store %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the stored ζ(n)−1 and its digit count. ok is false when
// the row is absent or unreadable; callers treat both as a cache miss.
func (s *Store) Load(n int) (*big.Float, int, bool) {
	var (
		txt  string
		prec int
	)
	if err := s.db.QueryRow(loadValueSQL, n).Scan(&txt, &prec); err != nil {
		return nil, 0, false
	}
	val, _, err := big.ParseFloat(txt, 10, cplx.Bits(prec), big.ToNearestEven)
	if err != nil {
		return nil, 0, false
	}
	return val, prec, true
}

// Save upserts ζ(n)−1 at prec digits. An existing row only moves
// forward: a lower-precision write leaves it untouched.
func (s *Store) Save(n int, lessOne *big.Float, prec int) error {
	if _, err := s.db.Exec(saveValueSQL, n, lessOne.Text('e', -1), prec); err != nil {
		return fmt.Errorf("zeta: save s=%d: %w", n, err)
	}
	return nil
}
