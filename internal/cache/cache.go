package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/mathescape"
)

// FileName is the cache file written into the output directory.
const FileName = ".flavordcache.json"

type DB struct {
	// Source path -> the output built from it
	Entries map[string]Entry `json:"entries"`
}

// Entry records the source hash an output was built from and what the
// rewrite did, so a skipped file still reports its regions.
type Entry struct {
	Sum     string           `json:"sum"`
	Dest    string           `json:"dest"`
	Stats   mathescape.Stats `json:"stats"`
	Changed bool             `json:"changed"`
}

// Sum returns the content hash stored in the cache.
func Sum(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// Fresh returns the entry for path when it was last built from content
// with hash sum into dest.
func (db DB) Fresh(path, sum, dest string) (Entry, bool) {
	e, ok := db.Entries[path]
	if !ok || e.Sum != sum || e.Dest != dest {
		return Entry{}, false
	}
	return e, true
}

func Load(dir string) (DB, error) {
	var db DB
	f, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

func Save(dir string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(filepath.Join(dir, FileName), b, 0644)
}
