package palette

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/pview/internal/logger"
	pverrors "github.com/alexisbeaulieu97/pview/pkg/errors"
)

// Store owns the palette currently on screen. Loading replaces it wholesale;
// a failed load leaves the previous palette in place.
type Store struct {
	opts    ParseOptions
	log     *logger.Logger
	current Palette
	source  string
}

// NewStore creates an empty store. log may be nil.
func NewStore(opts ParseOptions, log *logger.Logger) *Store {
	return &Store{opts: opts, log: log}
}

// Load reads the palette file at source and makes it current.
func (s *Store) Load(source string) (Palette, error) {
	f, err := os.Open(source)
	if err != nil {
		return Palette{}, pverrors.NewSourceError(source, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Palette{}, pverrors.NewSourceError(source, err)
	}
	if info.IsDir() {
		return Palette{}, pverrors.NewSourceError(source, os.ErrInvalid)
	}

	p, err := parse(filepath.Base(source), source, f, s.opts)
	if err != nil {
		s.log.WithFields(map[string]any{"source": source}).Error(err, "palette load failed")
		return Palette{}, err
	}

	log := s.log.WithFields(map[string]any{
		"source":    source,
		"colors":    p.Len(),
		"truncated": p.Truncated(),
		"skipped":   len(p.skipped),
	})
	for _, m := range p.skipped {
		log.Warn("skipped malformed token " + m.Token)
	}
	log.Debug("palette loaded")

	s.current = p
	s.source = source
	return p, nil
}

// Current returns the active palette.
func (s *Store) Current() Palette {
	return s.current
}

// Source returns the identifier of the active palette, or "" before the first load.
func (s *Store) Source() string {
	return s.source
}
