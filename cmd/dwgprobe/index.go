package main

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"gopkg.in/vmihailenco/msgpack.v2"
)

var versionsBucket = []byte("versions")

// indexEntry is the value stored per scanned path.
type indexEntry struct {
	Version string    `msgpack:"version"`
	Size    int64     `msgpack:"size"`
	ModTime time.Time `msgpack:"mtime"`
	Error   string    `msgpack:"error,omitempty"`
}

// index records scan results keyed by path.
type index struct {
	db *bolt.DB
}

func openIndex(path string) (*index, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(versionsBucket)
		return err
	})
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &index{db: db}, nil
}

// PutAll writes entries in a single transaction.
func (i *index) PutAll(entries map[string]indexEntry) error {
	return i.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(versionsBucket)
		for path, e := range entries {
			v, err := msgpack.Marshal(&e)
			if err != nil {
				return fmt.Errorf("encode %s: %w", path, err)
			}
			if err := b.Put([]byte(path), v); err != nil {
				return err
			}
		}

		return nil
	})
}

// Get returns the entry recorded for path.
func (i *index) Get(path string) (indexEntry, bool, error) {
	var (
		e     indexEntry
		found bool
	)
	err := i.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(versionsBucket).Get([]byte(path))
		if v == nil {
			return nil
		}
		found = true

		return msgpack.Unmarshal(v, &e)
	})

	return e, found, err
}

// ForEach visits every entry in key order.
func (i *index) ForEach(fn func(path string, e indexEntry) error) error {
	return i.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(versionsBucket).ForEach(func(k, v []byte) error {
			var e indexEntry
			if err := msgpack.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("decode %s: %w", k, err)
			}

			return fn(string(k), e)
		})
	})
}

func (i *index) Close() error {
	return i.db.Close()
}
