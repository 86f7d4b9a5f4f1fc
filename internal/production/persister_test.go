// Tests for FileStore round-trip and validation on load.
package production

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/typestatex"
	"github.com/comalice/typestatex/computer"
)

func builtComputer(t *testing.T) computer.Computer {
	t.Helper()
	b := computer.SetGPU(computer.SetCPU(computer.New("Jane"), computer.Intel), computer.Amd).AddRAM(16).AddRAM(32)
	c, err := computer.Build(b)
	require.NoError(t, err)
	return c
}

func TestFileStore_RoundTrip(t *testing.T) {
	stores := map[string]func(string) (*FileStore, error){
		"json": NewJSONStore,
		"yaml": NewYAMLStore,
	}
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			s, err := newStore(t.TempDir())
			require.NoError(t, err)

			rec := NewRecord(uuid.New(), builtComputer(t), time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
			require.NoError(t, s.Save(context.Background(), rec))

			loaded, err := s.Load(context.Background(), rec.ID)
			require.NoError(t, err)
			if diff := cmp.Diff(rec, loaded); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}

			ids, err := s.List(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{rec.ID}, ids)
		})
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	s, err := NewYAMLStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileStore_LoadRejectsInvalidProduct(t *testing.T) {
	dir := t.TempDir()
	s, err := NewYAMLStore(dir)
	require.NoError(t, err)

	id := uuid.New()
	data := []byte("id: " + id.String() + "\ncomputer:\n  owner: Jane\n  cpu: Intel\n  ram: [0]\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, id.String()+".yaml"), data, 0o644))

	_, err = s.Load(context.Background(), id)
	assert.ErrorIs(t, err, typestatex.ErrBelowMinimum)
}

func TestFileStore_ListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, uuid.NewString()+".yaml"), []byte("{}"), 0o644))

	ids, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStore_CanceledContext(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.Save(ctx, NewRecord(uuid.New(), builtComputer(t), time.Now()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChannelPublisher(t *testing.T) {
	ch := make(chan BuildEvent, 1)
	p := NewChannelPublisher(ch)

	ev := BuildEvent{RecordID: uuid.New(), Owner: "Jane", Outcome: Built}
	require.NoError(t, p.Publish(context.Background(), ev))
	require.NoError(t, p.Publish(context.Background(), ev), "full channel drops")
	assert.Equal(t, ev, <-ch)

	require.NoError(t, p.Close())
	_, open := <-ch
	assert.False(t, open)
}
