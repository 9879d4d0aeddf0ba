package page

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"postboard/internal/domain/model"
	"postboard/internal/domain/ports"
)

//go:embed static/index.html static/assets/*
var embeddedStatic embed.FS

// DefaultHostPage returns the built-in host page.
func DefaultHostPage() []byte {
	data, err := embeddedStatic.ReadFile("static/index.html")
	if err != nil {
		panic(fmt.Errorf("embedded host page: %w", err))
	}
	return data
}

// Assets returns the static files served next to the page, rooted so that
// the icon lives at assets/icon.png.
func Assets() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(fmt.Errorf("embedded assets: %w", err))
	}
	return sub
}

// LoadHostPage reads the host page at path, or the built-in one when path is empty.
func LoadHostPage(path string) ([]byte, error) {
	if path == "" {
		return DefaultHostPage(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read host page: %w", err)
	}
	return data, nil
}

// Store mounts boards into a fresh copy of the host page and keeps the latest result.
type Store struct {
	hostPage   []byte
	outputPath string
	logger     ports.Logger

	mu    sync.RWMutex
	html  []byte
	cards []model.Card
}

var _ ports.Mount = (*Store)(nil)

// NewStore builds a Store. An empty outputPath keeps the rendered page in memory only.
func NewStore(hostPage []byte, outputPath string, logger ports.Logger) *Store {
	return &Store{
		hostPage:   hostPage,
		outputPath: outputPath,
		logger:     logger,
	}
}

// Mount renders board into the host page, then publishes it to readers and the output file.
func (s *Store) Mount(ctx context.Context, board model.Board) error {
	doc, err := ParseDocument(bytes.NewReader(s.hostPage))
	if err != nil {
		return err
	}
	if err := doc.Mount(board); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return err
	}

	cards := make([]model.Card, len(board.Cards))
	copy(cards, board.Cards)

	s.mu.Lock()
	s.html = buf.Bytes()
	s.cards = cards
	s.mu.Unlock()

	if s.outputPath == "" {
		return nil
	}
	if err := writeFileAtomic(s.outputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("write rendered page: %w", err)
	}
	if s.logger != nil {
		s.logger.Debug(ctx, "rendered page written", "path", s.outputPath, "bytes", buf.Len())
	}
	return nil
}

// HTML returns a copy of the latest rendered page, or nil before the first mount.
func (s *Store) HTML() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bytes.Clone(s.html)
}

// Cards returns the cards of the latest rendered page.
func (s *Store) Cards() []model.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
