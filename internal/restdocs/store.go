package restdocs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// SnippetStore persists rendered snippets under slash-separated names such
// as v2/beers-get/http-request.adoc.
type SnippetStore interface {
	Save(ctx context.Context, name string, content []byte) error
}

// DirStore writes snippets below Root on the local filesystem.
type DirStore struct {
	Root string
}

// NewDirStore returns a DirStore rooted at root.
func NewDirStore(root string) *DirStore {
	return &DirStore{Root: root}
}

func (s *DirStore) Save(_ context.Context, name string, content []byte) error {
	path := filepath.Join(s.Root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snippet dir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write snippet: %w", err)
	}
	return nil
}

// MemoryStore keeps snippets in memory.
type MemoryStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, name string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = append([]byte(nil), content...)
	return nil
}

// Get returns the snippet stored under name.
func (s *MemoryStore) Get(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[name]
	return string(b), ok
}

// Names lists stored snippet names in sorted order.
func (s *MemoryStore) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.files))
	for n := range s.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
