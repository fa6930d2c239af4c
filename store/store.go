// Package store persists one JSON document per (account, domain) pair under
// a data directory, file names matching the document key
// ("{account_slug}_{domain}.json"). Writes are atomic: the document is
// written to a temporary file and renamed over the previous one, so an
// interrupted write never corrupts the last good state.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mzheln/orgbook"
)

// Store is a typed repository over a single data directory.
type Store struct {
	dir string
}

// Open ensures the data directory exists and returns a store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(id orgbook.AccountID, d orgbook.Domain) string {
	return filepath.Join(s.dir, d.Key(id)+".json")
}

// Load decodes the document for (account, domain) into v. A missing
// document returns fs.ErrNotExist (callers fall back to the domain's
// default set); an unreadable or malformed one returns a StorageError.
func (s *Store) Load(id orgbook.AccountID, d orgbook.Domain, v any) error {
	path := s.path(id, d)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("document %q: %w", d.Key(id), fs.ErrNotExist)
	}
	if err != nil {
		return &orgbook.StorageError{Key: d.Key(id), Err: err}
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return &orgbook.StorageError{Key: d.Key(id), Err: err}
	}
	return nil
}

// Save encodes v as the document for (account, domain), atomically.
func (s *Store) Save(id orgbook.AccountID, d orgbook.Domain, v any) error {
	path := s.path(id, d)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return &orgbook.StorageError{Key: d.Key(id), Err: err}
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return &orgbook.StorageError{Key: d.Key(id), Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &orgbook.StorageError{Key: d.Key(id), Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &orgbook.StorageError{Key: d.Key(id), Err: err}
	}
	return nil
}

// Accounts lists the account ids that have at least one persisted document.
func (s *Store) Accounts() ([]orgbook.AccountID, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("could not read data directory %q: %w", s.dir, err)
	}
	seen := make(map[orgbook.AccountID]struct{})
	var ids []orgbook.AccountID
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		id, ok := splitKey(e.Name())
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// splitKey recovers the account id from a document file name by stripping
// the longest matching domain suffix.
func splitKey(name string) (orgbook.AccountID, bool) {
	base := name[:len(name)-len(".json")]
	for _, d := range []orgbook.Domain{
		orgbook.DomainFinances, orgbook.DomainTransactions,
		orgbook.DomainLaunderingPercentage, orgbook.DomainCurrencies,
		orgbook.DomainCurrencyRates, orgbook.DomainItems,
		orgbook.DomainProperty, orgbook.DomainNotes,
		orgbook.DomainBinders, orgbook.DomainExchangeRates,
	} {
		suffix := "_" + string(d)
		if len(base) > len(suffix) && base[len(base)-len(suffix):] == suffix {
			return orgbook.AccountID(base[:len(base)-len(suffix)]), true
		}
	}
	return "", false
}
