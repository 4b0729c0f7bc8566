package assets

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// DiskStore stores assets on the local filesystem. Each asset is a data
// file plus a JSON sidecar holding its metadata.
type DiskStore struct {
	dir     string
	maxSize int64

	mu sync.Mutex
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
// maxSize of 0 means no limit.
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, maxSize: maxSize}, nil
}

func (s *DiskStore) Put(ctx context.Context, a Asset, r io.Reader) (Asset, error) {
	if s.maxSize > 0 && a.Size > s.maxSize {
		return Asset{}, ErrTooLarge
	}

	a.ID = uuid.NewString()
	path := filepath.Join(s.dir, a.ID)

	f, err := os.Create(path)
	if err != nil {
		return Asset{}, err
	}
	defer f.Close()

	var src io.Reader = r
	if s.maxSize > 0 {
		// One extra byte so oversize is distinguishable from exact-size.
		src = io.LimitReader(r, s.maxSize+1)
	}
	written, err := io.Copy(f, src)
	if err != nil {
		os.Remove(path)
		return Asset{}, err
	}
	if s.maxSize > 0 && written > s.maxSize {
		os.Remove(path)
		return Asset{}, ErrTooLarge
	}
	a.Size = written

	meta, err := json.Marshal(a)
	if err != nil {
		os.Remove(path)
		return Asset{}, err
	}
	if err := os.WriteFile(path+".json", meta, 0644); err != nil {
		os.Remove(path)
		return Asset{}, err
	}
	return a, nil
}

func (s *DiskStore) Open(ctx context.Context, id string) (Asset, io.ReadCloser, error) {
	if !validID(id) {
		return Asset{}, nil, ErrNotFound
	}
	path := filepath.Join(s.dir, id)

	meta, err := os.ReadFile(path + ".json")
	if err != nil {
		if os.IsNotExist(err) {
			return Asset{}, nil, ErrNotFound
		}
		return Asset{}, nil, err
	}
	var a Asset
	if err := json.Unmarshal(meta, &a); err != nil {
		return Asset{}, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Asset{}, nil, ErrNotFound
		}
		return Asset{}, nil, err
	}
	return a, f, nil
}

func (s *DiskStore) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path := filepath.Join(s.dir, id)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(path + ".json"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// validID rejects anything that could escape the storage directory.
func validID(id string) bool {
	if id == "" || strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return false
	}
	return true
}
