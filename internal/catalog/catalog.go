// Package catalog discovers the palette sources a viewer session cycles through.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pverrors "github.com/alexisbeaulieu97/pview/pkg/errors"
)

// DefaultExtension is the palette file filter used when none is configured.
const DefaultExtension = ".hex"

// Entry identifies one palette source.
type Entry struct {
	// ID is the path handed to the palette store.
	ID string
	// Name is the display name shown in the footer.
	Name string
}

// Catalog is the ordered, immutable list of sources discovered at startup.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from entries. It returns ErrEmptyCatalog when there are none.
func New(entries []Entry) (Catalog, error) {
	if len(entries) == 0 {
		return Catalog{}, pverrors.ErrEmptyCatalog
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return Catalog{entries: out}, nil
}

// Len returns the number of sources.
func (c Catalog) Len() int {
	return len(c.entries)
}

// At returns the i-th source.
func (c Catalog) At(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of all sources in order.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// IndexOf returns the position of the source with the given ID, or -1.
func (c Catalog) IndexOf(id string) int {
	for i, e := range c.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Options controls discovery.
type Options struct {
	// Dir is scanned when no explicit paths are given; bare names also resolve inside it.
	Dir string
	// Extension filters directory scans, compared case-insensitively.
	Extension string
}

func (o Options) extension() string {
	ext := o.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Discover lists the palette files directly inside dir whose extension matches,
// in file name order.
func Discover(dir string, opts Options) (Catalog, error) {
	entries, err := scan(dir, opts.extension())
	if err != nil {
		return Catalog{}, err
	}
	if len(entries) == 0 {
		return Catalog{}, fmt.Errorf("%w in %s (extension %s)", pverrors.ErrEmptyCatalog, dir, opts.extension())
	}
	return Catalog{entries: entries}, nil
}

// Resolve turns command line arguments into a catalog. Directories are scanned,
// files are taken as given, and a bare name that does not exist relative to the
// working directory is looked up inside opts.Dir. Without arguments opts.Dir is
// scanned.
func Resolve(args []string, opts Options) (Catalog, error) {
	if len(args) == 0 {
		return Discover(opts.Dir, opts)
	}

	var entries []Entry
	for _, arg := range args {
		path, info, err := locate(arg, opts.Dir)
		if err != nil {
			return Catalog{}, err
		}
		if info.IsDir() {
			found, err := scan(path, opts.extension())
			if err != nil {
				return Catalog{}, err
			}
			entries = append(entries, found...)
			continue
		}
		entries = append(entries, Entry{ID: path, Name: filepath.Base(path)})
	}

	if len(entries) == 0 {
		return Catalog{}, fmt.Errorf("%w for %s", pverrors.ErrEmptyCatalog, strings.Join(args, ", "))
	}
	return Catalog{entries: entries}, nil
}

func locate(arg, dir string) (string, os.FileInfo, error) {
	info, err := os.Stat(arg)
	if err == nil {
		return arg, info, nil
	}

	if dir != "" && !filepath.IsAbs(arg) && filepath.Base(arg) == arg {
		candidate := filepath.Join(dir, arg)
		if info, derr := os.Stat(candidate); derr == nil {
			return candidate, info, nil
		}
	}
	return "", nil, pverrors.NewSourceError(arg, err)
}

func scan(dir, ext string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pverrors.NewSourceError(dir, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if !de.Type().IsRegular() && de.Type()&os.ModeSymlink == 0 {
			continue
		}
		if !strings.EqualFold(filepath.Ext(de.Name()), ext) {
			continue
		}
		path := filepath.Join(dir, de.Name())
		if de.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}
		entries = append(entries, Entry{ID: path, Name: de.Name()})
	}
	return entries, nil
}
