package store

import (
	"encoding/binary"

	bolt "go.etcd.io/bbolt"

	. "github.com/elves/keyhandler/pkg/store/storedefs"
	"github.com/elves/keyhandler/pkg/ui"
)

func init() {
	initDB["initialize key history table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketKey))
		return err
	}
}

// NextKeySeq returns the next sequence number of the key history.
func (s *dbStore) NextKeySeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketKey))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddKey adds a new key to the key history.
func (s *dbStore) AddKey(k ui.Key) (int, error) {
	var (
		seq uint64
		err error
	)
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketKey))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(k.String()))
	})
	return int(seq), err
}

// DelKey deletes a key history item with the given sequence number.
func (s *dbStore) DelKey(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketKey))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Key queries the key history item with the specified sequence number.
func (s *dbStore) Key(seq int) (ui.Key, error) {
	var k ui.Key
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketKey))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingKey
		}
		var err error
		k, err = ui.ParseKey(string(v))
		return err
	})
	return k, err
}

// IterateKeys iterates all the keys in the specified range, and calls the
// callback with each key sequentially. Entries that can't be parsed are
// skipped.
func (s *dbStore) IterateKeys(from, upto int, f func(KeyEntry)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketKey))
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			key, err := ui.ParseKey(string(v))
			if err != nil {
				logger.Printf("skipping bad key history entry %d: %v", unmarshalSeq(k), err)
				continue
			}
			f(KeyEntry{Key: key, Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
}

// KeysWithSeq returns all keys within the specified range.
func (s *dbStore) KeysWithSeq(from, upto int) ([]KeyEntry, error) {
	var entries []KeyEntry
	err := s.IterateKeys(from, upto, func(e KeyEntry) {
		entries = append(entries, e)
	})
	return entries, err
}

// LastKey returns the most recently added key.
func (s *dbStore) LastKey() (KeyEntry, error) {
	var entry KeyEntry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketKey)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if key, err := ui.ParseKey(string(v)); err == nil {
				entry = KeyEntry{Key: key, Seq: int(unmarshalSeq(k))}
				return nil
			}
		}
		return ErrNoMatchingKey
	})
	return entry, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
