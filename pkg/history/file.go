package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileState is the YAML document written to disk.
type fileState struct {
	NextID  int      `yaml:"next_id"`
	Records []Record `yaml:"records"`
}

// FileRepository persists records to a YAML file. The file is read on first
// use and rewritten after every change; a missing file is an empty history.
type FileRepository struct {
	path string

	once    sync.Once
	loadErr error
	mem     *MemoryRepository
	writeMu sync.Mutex
}

// NewFileRepository returns a repository backed by path.
func NewFileRepository(path string, limit int) *FileRepository {
	return &FileRepository{
		path: path,
		mem:  NewMemoryRepository(limit),
	}
}

// Path returns the backing file location.
func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) ensureLoaded() error {
	r.once.Do(func() {
		data, err := os.ReadFile(r.path)
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		if err != nil {
			r.loadErr = fmt.Errorf("history: read %s: %w", r.path, err)
			return
		}
		var st fileState
		if err := yaml.Unmarshal(data, &st); err != nil {
			r.loadErr = fmt.Errorf("history: decode %s: %w", r.path, err)
			return
		}
		r.mem.load(st.Records, st.NextID)
	})
	return r.loadErr
}

// Add implements Repository.
func (r *FileRepository) Add(rec Record) (Record, error) {
	if err := r.ensureLoaded(); err != nil {
		return Record{}, err
	}
	rec, err := r.mem.Add(rec)
	if err != nil {
		return Record{}, err
	}
	if err := r.save(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List implements Repository.
func (r *FileRepository) List() ([]Record, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	return r.mem.List()
}

// Get implements Repository.
func (r *FileRepository) Get(id int) (Record, error) {
	if err := r.ensureLoaded(); err != nil {
		return Record{}, err
	}
	return r.mem.Get(id)
}

// Clear implements Repository.
func (r *FileRepository) Clear() error {
	if err := r.ensureLoaded(); err != nil {
		return err
	}
	if err := r.mem.Clear(); err != nil {
		return err
	}
	return r.save()
}

// save writes the history to a temporary file and renames it into place.
func (r *FileRepository) save() error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	data, err := yaml.Marshal(r.mem.state())
	if err != nil {
		return fmt.Errorf("history: encode: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("history: create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".history-*.yaml")
	if err != nil {
		return fmt.Errorf("history: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("history: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("history: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("history: rename to %s: %w", r.path, err)
	}
	return nil
}
