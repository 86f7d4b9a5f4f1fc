package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/comalice/typestatex/computer"
)

// Record is a finalized product as stored on disk. Only products are
// persisted: builders hold a single-use handle and never leave the process.
type Record struct {
	ID        uuid.UUID     `json:"id" yaml:"id"`
	CreatedAt time.Time     `json:"createdAt" yaml:"createdAt"`
	Computer  computer.Spec `json:"computer" yaml:"computer"`
}

// NewRecord wraps a finalized computer.
func NewRecord(id uuid.UUID, c computer.Computer, at time.Time) Record {
	return Record{ID: id, CreatedAt: at.UTC(), Computer: c.Spec()}
}

// codec abstracts the serialization format of a file store.
type codec struct {
	ext       string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var (
	jsonCodec = codec{
		ext:       ".json",
		marshal:   func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") },
		unmarshal: json.Unmarshal,
	}
	yamlCodec = codec{ext: ".yaml", marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}
)

// FileStore is a file-based record store, one file per record.
type FileStore struct {
	dir   string
	codec codec
}

// NewJSONStore creates a FileStore writing JSON, ensuring the directory exists.
func NewJSONStore(dir string) (*FileStore, error) {
	return newFileStore(dir, jsonCodec)
}

// NewYAMLStore creates a FileStore writing YAML, ensuring the directory exists.
func NewYAMLStore(dir string) (*FileStore, error) {
	return newFileStore(dir, yamlCodec)
}

func newFileStore(dir string, c codec) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileStore{dir: dir, codec: c}, nil
}

func (s *FileStore) Save(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := s.codec.marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", rec.ID, err)
	}

	fn := filepath.Join(s.dir, rec.ID.String()+s.codec.ext)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

// Load reads a record and rebuilds its product through the typed builder,
// so a hand-edited file with invalid values is rejected.
func (s *FileStore) Load(ctx context.Context, id uuid.UUID) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	fn := filepath.Join(s.dir, id.String()+s.codec.ext)
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, fmt.Errorf("record %s: %w", id, os.ErrNotExist)
		}
		return Record{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var rec Record
	if err := s.codec.unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("unmarshal %s: %w", fn, err)
	}
	rec.ID = id
	if _, err := computer.FromSpec(rec.Computer); err != nil {
		return Record{}, fmt.Errorf("record %s validation after load: %w", id, err)
	}
	return rec, nil
}

// List returns the IDs of all stored records, sorted.
func (s *FileStore) List(ctx context.Context) ([]uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.dir, err)
	}
	var ids []uuid.UUID
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), s.codec.ext)
		if e.IsDir() || !ok {
			continue
		}
		id, err := uuid.Parse(name)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}
