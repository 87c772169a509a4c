// Package bolt persists the admin tool's collections in an embedded bbolt
// database, mirroring the browser-localStorage layout the tool was designed
// around: one bucket holding a `users` entry (JSON array), a `products`
// entry (JSON array) and a `current_user` entry (JSON object), plus a
// monotonic id counter per collection.
//
// Every repository call is a single read-modify-write bbolt transaction, so
// each operation is atomic from the caller's perspective. There is no
// caching: every accessor round-trips through storage.
package bolt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"
)

const (
	bucketName     = "storefront"
	keyUsers       = "users"
	keyUsersSeq    = "users_seq"
	keyProducts    = "products"
	keyProductsSeq = "products_seq"
	keySession     = "current_user"
)

// Store wraps the open bbolt database. Repositories share one Store.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the database file and ensures the bucket exists.
func Open(path string) (*Store, error) {
	// Prices persist as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt open: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt init bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

func bucket(tx *bbolt.Tx) *bbolt.Bucket {
	return tx.Bucket([]byte(bucketName))
}

// decodeList unmarshals a collection entry. Absent or corrupt entries
// behave as an empty collection, never as an error.
func decodeList[T any](b *bbolt.Bucket, key string) []T {
	raw := b.Get([]byte(key))
	if len(raw) == 0 {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func putJSON(b *bbolt.Bucket, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := b.Put([]byte(key), raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// nextID advances the persisted per-collection counter. maxExisting guards
// against a missing or corrupt counter entry: the counter never runs behind
// the highest id already stored.
func nextID(b *bbolt.Bucket, seqKey string, maxExisting int64) (int64, error) {
	last := maxExisting
	if raw := b.Get([]byte(seqKey)); len(raw) > 0 {
		if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil && n > last {
			last = n
		}
	}
	id := last + 1
	if err := b.Put([]byte(seqKey), []byte(strconv.FormatInt(id, 10))); err != nil {
		return 0, fmt.Errorf("advance %s: %w", seqKey, err)
	}
	return id, nil
}
