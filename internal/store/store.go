package store

import (
	"crypto/rand"
	"encoding/json"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Namespace keys, one persisted JSON blob per record kind.
const (
	entriesKey   = "bloom_entries_v1"
	sleepKey     = "bloom_sleep_v1"
	resourcesKey = "bloom_resources_v1"
	settingsKey  = "bloom_settings_v1"
)

// KV is the persistence service the store writes through: a durable
// string-keyed blob space with whole-value reads and writes.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
}

// Store owns the canonical record collections. Every mutation is a full
// read-modify-write of the kind's blob, so a Load after any operation
// reflects exactly what was last written.
type Store struct {
	kv    KV
	clock func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewStore(kv KV) *Store {
	return &Store{
		kv:      kv,
		clock:   time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// newID mints a ULID from the creation timestamp. ULIDs sort
// lexicographically by time, which keeps ids unique and monotonically
// increasing even for records created within the same millisecond.
func (store *Store) newID(now time.Time) string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), store.entropy).String()
}

func (store *Store) writeCollection(key string, collection any) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return err
	}
	return store.kv.Set(key, string(raw))
}

// unmarshalCollection decodes a persisted blob. Callers treat a decode
// failure as corruption and substitute the empty collection.
func unmarshalCollection(raw string, target any) error {
	return json.Unmarshal([]byte(raw), target)
}
