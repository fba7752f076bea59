package lib

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"
)

var (
	TRANSLATIONS_BKT = []byte("translations")
	UNTRANSLATED_BKT = []byte("untranslated")
)

/*
	Translation is an English rendering of a run of CJK text
*/
type Translation struct {
	Source    string
	English   string
	UpdatedAt time.Time
}

/*
	TranslationCache stores translations between runs. Lookups during a run
	are served from a snapshot taken at open, so a build sees one fixed set of
	translations.
*/
type TranslationCache struct {
	db       *bolt.DB
	snapshot map[string]string
}

func OpenTranslationCache(path string) (*TranslationCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open translation cache: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bkt := range [][]byte{TRANSLATIONS_BKT, UNTRANSLATED_BKT} {
			if _, err := tx.CreateBucketIfNotExists(bkt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	cache := &TranslationCache{db: db}
	if err := cache.reload(); err != nil {
		db.Close()
		return nil, err
	}

	return cache, nil
}

func (tc *TranslationCache) Close() error {
	return tc.db.Close()
}

func (tc *TranslationCache) reload() error {
	snapshot := make(map[string]string)
	err := tc.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(TRANSLATIONS_BKT).ForEach(func(k, v []byte) error {
			translation := Translation{}
			if err := decode(v, &translation); err != nil {
				return fmt.Errorf("translation %q: %w", k, err)
			}
			snapshot[string(k)] = translation.English
			return nil
		})
	})
	if err != nil {
		return err
	}

	tc.snapshot = snapshot
	return nil
}

func (tc *TranslationCache) Translate(source string) (string, bool) {
	english, ok := tc.snapshot[source]
	return english, ok
}

/*
	Put stores translations and clears them from the untranslated set
*/
func (tc *TranslationCache) Put(translations ...Translation) error {
	err := tc.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(TRANSLATIONS_BKT)
		pending := tx.Bucket(UNTRANSLATED_BKT)
		for _, translation := range translations {
			if translation.UpdatedAt.IsZero() {
				translation.UpdatedAt = time.Now()
			}

			v, err := encode(translation)
			if err != nil {
				return err
			}
			if err := bkt.Put([]byte(translation.Source), v); err != nil {
				return err
			}
			if err := pending.Delete([]byte(translation.Source)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return tc.reload()
}

/*
	MarkUntranslated records CJK runs that were seen without a translation
*/
func (tc *TranslationCache) MarkUntranslated(sources []string) error {
	return tc.db.Update(func(tx *bolt.Tx) error {
		known := tx.Bucket(TRANSLATIONS_BKT)
		bkt := tx.Bucket(UNTRANSLATED_BKT)
		for _, source := range sources {
			if known.Get([]byte(source)) != nil {
				continue
			}
			if err := bkt.Put([]byte(source), []byte("")); err != nil {
				return err
			}
		}
		return nil
	})
}

/*
	Export returns every translation followed by every untranslated run (with
	an empty English field), each in key order
*/
func (tc *TranslationCache) Export() ([]Translation, error) {
	translations := []Translation{}
	err := tc.db.View(func(tx *bolt.Tx) error {
		err := tx.Bucket(TRANSLATIONS_BKT).ForEach(func(k, v []byte) error {
			translation := Translation{}
			if err := decode(v, &translation); err != nil {
				return err
			}
			translations = append(translations, translation)
			return nil
		})
		if err != nil {
			return err
		}

		return tx.Bucket(UNTRANSLATED_BKT).ForEach(func(k, _ []byte) error {
			translations = append(translations, Translation{Source: string(k)})
			return nil
		})
	})

	return translations, err
}

func encode(v interface{}) ([]byte, error) {
	b := &bytes.Buffer{}
	if err := gob.NewEncoder(b).Encode(v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func decode(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
