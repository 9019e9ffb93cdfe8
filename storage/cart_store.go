package storage

import (
	"encoding/json"
	"sync"

	"github.com/south-indian-kitchen/backend/models"
)

// CartStore keeps one serialized cart blob per browsing session. Blobs are
// written wholesale on every mutation and read wholesale on every access,
// mirroring a single named key per session. Unreadable data is treated as
// an empty cart, never surfaced as an error.
type CartStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewCartStore() *CartStore {
	return &CartStore{
		blobs: make(map[string][]byte),
	}
}

// Load returns the cart lines for a session. A missing key or a blob that
// fails to parse degrades to an empty cart.
func (s *CartStore) Load(session string) []models.CartItem {
	s.mu.RLock()
	blob, ok := s.blobs[session]
	s.mu.RUnlock()

	if !ok {
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal(blob, &items); err != nil {
		return []models.CartItem{}
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items
}

// Save overwrites the session's blob with the full line sequence.
func (s *CartStore) Save(session string, items []models.CartItem) {
	blob, err := json.Marshal(items)
	if err != nil {
		// CartItem marshals unconditionally; keep the old blob if not.
		return
	}

	s.mu.Lock()
	s.blobs[session] = blob
	s.mu.Unlock()
}

// Clear deletes the session's blob.
func (s *CartStore) Clear(session string) {
	s.mu.Lock()
	delete(s.blobs, session)
	s.mu.Unlock()
}
