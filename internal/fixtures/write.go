package fixtures

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"etherion/internal/market"
)

const (
	BOARD_FILE   = "board.json"
	STAGES_FILE  = "stages.json"
	SENSORS_FILE = "sensors.json"
	BOARD_CSV    = "board.csv"
)

type WriteOptions struct {
	CSV bool // also write board.csv; when false a stale board.csv is removed
}

type artifact struct {
	name   string
	encode func() ([]byte, error)
}

// EncodeJSON indents by two spaces and leaves non-ASCII text unescaped.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func jsonArtifact(name string, v any) artifact {
	return artifact{name: name, encode: func() ([]byte, error) { return EncodeJSON(v) }}
}

func (s Snapshot) artifacts(opts WriteOptions) []artifact {
	out := []artifact{
		jsonArtifact(BOARD_FILE, s.Board),
		jsonArtifact(STAGES_FILE, s.Stages),
		jsonArtifact(SENSORS_FILE, s.Sensors),
	}
	if opts.CSV {
		items := s.Board.Items
		out = append(out, artifact{name: BOARD_CSV, encode: func() ([]byte, error) {
			var buf bytes.Buffer
			if err := market.WriteCSV(&buf, items); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		}})
	}
	return out
}

// Write encodes and writes every document into dir concurrently. Each file is
// replaced atomically; the returned paths follow document order.
func Write(ctx context.Context, dir string, s Snapshot, opts WriteOptions, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}

	arts := s.artifacts(opts)
	paths := make([]string, len(arts))

	g, gctx := errgroup.WithContext(ctx)
	for i, a := range arts {
		a := a
		path := filepath.Join(dir, a.name)
		paths[i] = path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := a.encode()
			if err != nil {
				return fmt.Errorf("encode %s: %w", a.name, err)
			}
			if err := atomicWriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", a.name, err)
			}
			log.Debug("wrote document", zap.String("path", path), zap.Int("bytes", len(data)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !opts.CSV {
		if err := removeStale(filepath.Join(dir, BOARD_CSV)); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// removeStale deletes a leftover artifact from an earlier run.
func removeStale(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale %s: %w", filepath.Base(path), err)
	}
	return nil
}

// atomicWriteFile writes content to a temp file in the same directory and
// renames it over path.
func atomicWriteFile(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
