package store

import (
	bolt "go.etcd.io/bbolt"

	. "github.com/elves/keyhandler/pkg/store/storedefs"
)

func init() {
	initDB["initialize setting table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSetting))
		return err
	}
}

// Setting gets the value of a setting.
func (s *dbStore) Setting(n string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSetting))
		v := b.Get([]byte(n))
		if v == nil {
			return ErrNoSetting
		}
		value = string(v)
		return nil
	})
	return value, err
}

// SetSetting sets the value of a setting.
func (s *dbStore) SetSetting(n, v string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSetting))
		return b.Put([]byte(n), []byte(v))
	})
}

// DelSetting deletes a setting.
func (s *dbStore) DelSetting(n string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSetting))
		return b.Delete([]byte(n))
	})
}
