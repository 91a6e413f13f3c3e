package draw

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pview/internal/contrast"
	"github.com/alexisbeaulieu97/pview/internal/palette"
	"github.com/alexisbeaulieu97/pview/internal/session"
)

// recorder is a Surface that writes every call down. Text is measured as
// size/2 per rune wide and size tall.
type recorder struct {
	calls []string
}

func (r *recorder) Clear(c palette.Color) {
	r.calls = append(r.calls, fmt.Sprintf("clear %s", c))
}

func (r *recorder) DrawSquare(x, y, size int, c palette.Color) {
	r.calls = append(r.calls, fmt.Sprintf("square %d,%d %d %s", x, y, size, c))
}

func (r *recorder) MeasureText(text string, size int) (int, int) {
	return len([]rune(text)) * size / 2, size
}

func (r *recorder) DrawText(text string, x, y, size int, c palette.Color) {
	r.calls = append(r.calls, fmt.Sprintf("text %q %d,%d %d %s", text, x, y, size, c))
}

func TestFrameDrawOrder(t *testing.T) {
	t.Parallel()

	p := palette.New("pair.hex", []palette.Color{palette.RGB(0, 0, 0), palette.RGB(255, 255, 255)})
	sp := session.Spacing{Margin: 10, BottomMargin: 40, Gutter: 10, FooterOffset: 30, LabelSize: 12, FooterSize: 20}
	f := session.BuildFrame(p, "pair.hex", session.Light, session.Viewport{Width: 800, Height: 600}, sp)
	require.Equal(t, 385, f.Layout.CellSize)

	r := &recorder{}
	Frame(r, f)

	// Labels are 6*6=36 wide and 12 tall, centred in 385: offset 174/186.
	assert.Equal(t, []string{
		"clear #F5F5F5",
		"square 10,10 385 #000000",
		`text "000000" 184,196 12 #FFFFFF`,
		"square 405,10 385 #FFFFFF",
		`text "FFFFFF" 579,196 12 #000000`,
		`text "Total Colors: 2" 10,570 20 #000000`,
		`text "pair.hex" 710,570 20 #000000`,
	}, r.calls)
}

func TestLabelSkippedWhenTooWide(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	sw := session.Swatch{X: 0, Y: 0, Size: 30, Color: palette.RGB(1, 2, 3), Label: "010203", LabelColor: contrast.Light()}

	assert.False(t, Label(r, sw, 12), "36 wide label cannot fit in 30")
	assert.Empty(t, r.calls)

	assert.True(t, Label(r, sw, 10))
	assert.Equal(t, []string{`text "010203" 0,10 10 #FFFFFF`}, r.calls)
}

func TestLabelSkippedWhenTooTall(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	sw := session.Swatch{Size: 8, Label: "AB"}
	assert.False(t, Label(r, sw, 10))
}

func TestFooterNameDroppedWhenItWouldOverlap(t *testing.T) {
	t.Parallel()

	f := session.Frame{
		Viewport: session.Viewport{Width: 100, Height: 60},
		Spacing:  session.Spacing{Margin: 5, FooterSize: 10},
		Count:    "Total Colors: 3",
		Name:     "a-very-long-palette.hex",
		FooterY:  40,
		Text:     contrast.Dark(),
	}

	r := &recorder{}
	Footer(r, f)
	assert.Equal(t, []string{`text "Total Colors: 3" 5,40 10 #000000`}, r.calls)
}

func TestFrameWithoutSwatchesStillDrawsFooter(t *testing.T) {
	t.Parallel()

	p := palette.New("tiny", []palette.Color{palette.RGB(9, 9, 9)})
	f := session.BuildFrame(p, "", session.Dark, session.Viewport{Width: 10, Height: 10}, session.Spacing{Margin: 10, BottomMargin: 40})

	r := &recorder{}
	Frame(r, f)
	assert.Equal(t, []string{
		"clear #181818",
		`text "Total Colors: 1" 10,10 0 #FFFFFF`,
	}, r.calls)
}
