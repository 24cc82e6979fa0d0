package wishlist

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultStoragePath is the well-known key the wishlist document lives
// under when WISHLIST_FILE is not set.
const DefaultStoragePath = "data/wishlist.json"

// FileStorage keeps the wishlist as a single JSON document on disk.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	if path == "" {
		path = DefaultStoragePath
	}
	return &FileStorage{path: path}
}

// Load reads the stored document. A missing file is an empty wishlist;
// malformed JSON is reported so the caller can discard it.
func (f *FileStorage) Load() ([]Item, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Item{}, nil
		}
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (f *FileStorage) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, data, 0o644)
}
