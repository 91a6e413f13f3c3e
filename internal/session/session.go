// Package session implements the viewer state machine: which palette of the
// catalog is on screen, which theme is active, and what a frame shows.
package session

import (
	"fmt"

	"github.com/alexisbeaulieu97/pview/internal/catalog"
	"github.com/alexisbeaulieu97/pview/internal/logger"
	"github.com/alexisbeaulieu97/pview/internal/palette"
	pverrors "github.com/alexisbeaulieu97/pview/pkg/errors"
)

// Event is a discrete user action applied between frames.
type Event int

const (
	NextPalette Event = iota
	PreviousPalette
	ToggleTheme
)

func (e Event) String() string {
	switch e {
	case NextPalette:
		return "next"
	case PreviousPalette:
		return "previous"
	case ToggleTheme:
		return "toggle-theme"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// LoadPolicy decides what a failed reload does to the session.
type LoadPolicy string

const (
	// PolicyFatal surfaces the failure as fatal; the caller is expected to stop.
	PolicyFatal LoadPolicy = "fatal"
	// PolicyKeep stays on the previous palette and reports a notice.
	PolicyKeep LoadPolicy = "keep"
)

// Loader is the palette store contract the session depends on.
type Loader interface {
	Load(source string) (palette.Palette, error)
	Current() palette.Palette
}

// LoadFailure wraps a palette load error raised by navigation or reload.
// The session state is unchanged when it is returned.
type LoadFailure struct {
	Entry catalog.Entry
	Fatal bool
	Err   error
}

func (e *LoadFailure) Error() string {
	return fmt.Sprintf("load %s: %v", e.Entry.Name, e.Err)
}

// Unwrap exposes the underlying error.
func (e *LoadFailure) Unwrap() error {
	return e.Err
}

// Options configures a Session.
type Options struct {
	Theme       Theme
	OnLoadError LoadPolicy
	Logger      *logger.Logger
}

// Session holds the current catalog index and theme.
type Session struct {
	catalog catalog.Catalog
	store   Loader
	index   int
	theme   Theme
	policy  LoadPolicy
	log     *logger.Logger
}

// New loads the first catalog entry and returns a session positioned on it.
// Any load failure here is returned as is; there is no previous palette to keep.
func New(cat catalog.Catalog, store Loader, opts Options) (*Session, error) {
	if cat.Len() == 0 {
		return nil, pverrors.ErrEmptyCatalog
	}

	policy := opts.OnLoadError
	if policy == "" {
		policy = PolicyFatal
	}

	s := &Session{
		catalog: cat,
		store:   store,
		theme:   opts.Theme,
		policy:  policy,
		log:     opts.Logger,
	}

	if _, err := store.Load(cat.At(0).ID); err != nil {
		return nil, err
	}
	s.log.WithFields(map[string]any{"palette": cat.At(0).Name, "sources": cat.Len()}).Info("session started")
	return s, nil
}

// Index returns the current catalog position.
func (s *Session) Index() int {
	return s.index
}

// Theme returns the active theme.
func (s *Session) Theme() Theme {
	return s.theme
}

// Entry returns the catalog entry on screen.
func (s *Session) Entry() catalog.Entry {
	return s.catalog.At(s.index)
}

// Catalog returns the session's catalog.
func (s *Session) Catalog() catalog.Catalog {
	return s.catalog
}

// Palette returns the palette on screen.
func (s *Session) Palette() palette.Palette {
	return s.store.Current()
}

// Apply dispatches a discrete event.
func (s *Session) Apply(ev Event) error {
	switch ev {
	case NextPalette:
		return s.Next()
	case PreviousPalette:
		return s.Previous()
	case ToggleTheme:
		s.ToggleTheme()
		return nil
	default:
		return fmt.Errorf("unknown event %v", ev)
	}
}

// Next moves to the following catalog entry, wrapping to the first.
func (s *Session) Next() error {
	return s.Jump(s.index + 1)
}

// Previous moves to the preceding catalog entry, wrapping to the last.
func (s *Session) Previous() error {
	return s.Jump(s.index - 1)
}

// Jump moves to catalog position i, taken modulo the catalog size.
func (s *Session) Jump(i int) error {
	n := s.catalog.Len()
	target := ((i % n) + n) % n
	if err := s.load(target); err != nil {
		return err
	}
	s.index = target
	s.log.WithFields(map[string]any{"index": target, "palette": s.Entry().Name}).Debug("palette selected")
	return nil
}

// Reload re-reads the current source, for example after it changed on disk.
func (s *Session) Reload() error {
	if err := s.load(s.index); err != nil {
		return err
	}
	s.log.WithFields(map[string]any{"palette": s.Entry().Name}).Info("palette reloaded")
	return nil
}

// ToggleTheme flips between the light and dark theme.
func (s *Session) ToggleTheme() {
	s.theme = s.theme.Toggle()
	s.log.WithFields(map[string]any{"theme": s.theme.String()}).Debug("theme toggled")
}

func (s *Session) load(i int) error {
	entry := s.catalog.At(i)
	if _, err := s.store.Load(entry.ID); err != nil {
		failure := &LoadFailure{Entry: entry, Fatal: s.policy != PolicyKeep, Err: err}
		s.log.WithFields(map[string]any{"palette": entry.Name, "fatal": failure.Fatal}).Error(err, "palette load failed")
		return failure
	}
	return nil
}
