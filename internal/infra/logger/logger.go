package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/baliza/genesis/internal/buildinfo"
)

// fileName is the log file kept under <workspace>/.genesis/logs.
const fileName = "genesis.log"

// Config controls where the log file lives and how verbose it is.
type Config struct {
	Root  string
	Debug bool
}

type state struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu  sync.RWMutex
	cur = discarding()
)

func discarding() state {
	return state{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Dir returns the log directory of the workspace at root.
func Dir(root string) string {
	return filepath.Join(root, ".genesis", "logs")
}

// Setup routes the global logger to <root>/.genesis/logs/genesis.log and
// records a genesis.started event. Until Setup succeeds, L returns a logger
// that discards everything. The returned cleanup closes the file and goes
// back to discarding.
func Setup(cfg Config) (func() error, error) {
	root := "."
	if cfg.Root != "" {
		root = filepath.Clean(cfg.Root)
	}

	dir := Dir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		setDiscard()
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		setDiscard()
		return nil, err
	}

	next := state{
		log:  slog.New(newHandler(f, cfg.Debug)),
		file: f,
		path: path,
	}

	mu.Lock()
	cur = next
	mu.Unlock()

	next.log.Info("genesis.started",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"workspace", root,
		"debug", cfg.Debug,
	)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if cur.file != nil {
			cerr = cur.file.Close()
		}
		cur = discarding()
		return cerr
	}

	return cleanup, nil
}

// newHandler writes JSON lines with UTC timestamps. Debug lowers the level
// and adds the source position of each event.
func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
}

// L returns the current global logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

// Path is the log file in use, or "" while discarding.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	cur = discarding()
}

// IsReady reports an error while the logger is still discarding.
func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if cur.file == nil || cur.path == "" {
		return errors.New("logger not initialized")
	}
	return nil
}
