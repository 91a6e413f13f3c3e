package palette

import (
	"bufio"
	"io"
	"strings"

	pverrors "github.com/alexisbeaulieu97/pview/pkg/errors"
)

const maxLineBytes = 1 << 20

// ParseOptions controls how malformed tokens are handled.
type ParseOptions struct {
	// Strict fails on the first malformed token instead of skipping it.
	Strict bool
}

// Parse reads whitespace separated RRGGBB tokens from r. Reading stops once
// Capacity colors have been collected; any further token marks the palette as
// truncated. Malformed tokens are skipped and recorded unless opts.Strict is set,
// in which case a *pverrors.ParseError carrying the line number is returned.
func Parse(name string, r io.Reader, opts ParseOptions) (Palette, error) {
	return parse(name, name, r, opts)
}

// parse names the palette name and reports errors against path.
func parse(name, path string, r io.Reader, opts ParseOptions) (Palette, error) {
	p := Palette{name: name, colors: make([]Color, 0, 16)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	line := 0
scan:
	for scanner.Scan() {
		line++
		for _, token := range strings.Fields(scanner.Text()) {
			if len(p.colors) == Capacity {
				p.truncated = true
				break scan
			}

			c, err := ParseHex(token)
			if err != nil {
				if opts.Strict {
					return Palette{}, pverrors.NewParseError(path, line, err)
				}
				p.skipped = append(p.skipped, Malformed{Line: line, Token: token})
				continue
			}
			p.colors = append(p.colors, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return Palette{}, pverrors.NewSourceError(path, err)
	}

	return p, nil
}
