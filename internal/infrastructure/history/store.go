// Package history persists each enrichment cycle's summary batch to a
// bounded, rotating JSON log on disk.
package history

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/match-center/internal/domain/match"
	"github.com/riskibarqy/match-center/internal/platform/logging"
)

// MaxEntries bounds the history log; the oldest batches are evicted first.
const MaxEntries = 100

// Store appends summary batches to a single JSON file. The whole
// read-modify-write sequence runs under an exclusive file lock so
// concurrent writers never interleave.
type Store struct {
	path   string
	logger *logging.Logger
}

type fileShape struct {
	History          []match.Batch `json:"history"`
	LastUpdated      string        `json:"last_updated"`
	TotalEntries     int           `json:"total_entries"`
	LatestMatchCount int           `json:"latest_match_count"`
}

func NewStore(path string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{path: path, logger: logger}
}

// Append adds one batch to the log, evicting the oldest entries beyond
// MaxEntries before the append.
func (s *Store) Append(ctx context.Context, batch match.Batch) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer file.Close()

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("lock history file: %w", err)
	}
	defer func() {
		_ = syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
	}()

	data := s.load(ctx, file)

	if len(data.History) >= MaxEntries {
		keep := MaxEntries - 1
		s.logger.InfoContext(ctx, "rotating history", "kept", keep, "dropped", len(data.History)-keep)
		data.History = data.History[len(data.History)-keep:]
	}
	data.History = append(data.History, batch)
	data.LastUpdated = batch.Timestamp
	data.TotalEntries = len(data.History)
	data.LatestMatchCount = batch.TotalMatches

	return s.write(file, data)
}

// Load returns the current history contents.
func (s *Store) Load(ctx context.Context) ([]match.Batch, error) {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer file.Close()

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_SH); err != nil {
		return nil, fmt.Errorf("lock history file: %w", err)
	}
	defer func() {
		_ = syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
	}()

	return s.load(ctx, file).History, nil
}

// Latest returns the most recent batch, or false when the log is empty.
func (s *Store) Latest(ctx context.Context) (match.Batch, bool, error) {
	batches, err := s.Load(ctx)
	if err != nil || len(batches) == 0 {
		return match.Batch{}, false, err
	}
	return batches[len(batches)-1], true, nil
}

// load reads and decodes the backing file. A file holding a bare batch
// instead of the wrapper is treated as one legacy entry; undecodable
// content starts the log over.
func (s *Store) load(ctx context.Context, file *os.File) fileShape {
	raw, err := io.ReadAll(file)
	if err != nil {
		s.logger.WarnContext(ctx, "history file unreadable, starting over", "error", err)
		return fileShape{}
	}
	if len(raw) == 0 {
		return fileShape{}
	}

	var data fileShape
	if err := sonic.Unmarshal(raw, &data); err == nil && len(data.History) > 0 {
		return data
	}

	var legacy match.Batch
	if err := sonic.Unmarshal(raw, &legacy); err == nil {
		return fileShape{History: []match.Batch{legacy}}
	}

	s.logger.WarnContext(ctx, "history file corrupted, starting over", "path", s.path)
	return fileShape{}
}

func (s *Store) write(file *os.File, data fileShape) error {
	raw, err := sonic.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(raw)
	_, _ = buf.WriteString("\n")

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind history file: %w", err)
	}
	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("truncate history file: %w", err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return file.Sync()
}
