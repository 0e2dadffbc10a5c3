// Package filestore persists the task collection as a single JSON file.
//
// The file holds one pretty-printed JSON array. It is created with "[]" on
// first access and every save rewrites it whole via a temp file and rename,
// so readers never observe a partial write.
package filestore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo-list-app/internal/model"
)

// ErrCorrupt marks a file that exists but cannot be read as a task
// collection.
var ErrCorrupt = errors.New("corrupt task file")

type Options struct {
	// Validate checks the file against the embedded task schema on load.
	Validate bool
}

type Store struct {
	path   string
	schema *jsonschema.Schema

	mu sync.Mutex
}

func New(path string, opts Options) (*Store, error) {
	if path == "" {
		return nil, errors.New("filestore: empty path")
	}
	s := &Store{path: path}
	if opts.Validate {
		schema, err := compileSchema()
		if err != nil {
			return nil, err
		}
		s.schema = schema
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load() ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) Save(tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(tasks)
}

func (s *Store) Update(fn func([]model.Task) ([]model.Task, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load()
	if err != nil {
		return err
	}
	next, err := fn(tasks)
	if err != nil {
		return err
	}
	return s.save(next)
}

func (s *Store) load() ([]model.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := writeAtomic(s.path, []byte("[]")); err != nil {
			return nil, fmt.Errorf("create task file: %w", err)
		}
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []model.Task{}, nil
	}

	if s.schema != nil {
		if err := validateRaw(s.schema, data); err != nil {
			return nil, fmt.Errorf("%s: %w", s.path, err)
		}
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", s.path, ErrCorrupt, err)
	}
	if s.schema != nil {
		if err := validateIDs(tasks); err != nil {
			return nil, fmt.Errorf("%s: %w", s.path, err)
		}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *Store) save(tasks []model.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}
	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// Encode renders tasks in the on-disk format: 2-space indentation, no HTML
// escaping, no trailing newline. A nil slice encodes as "[]".
func Encode(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}

	success = true
	return nil
}
