package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// ScoreFontSize is the size of the score line in points.
const ScoreFontSize = 24

var ScoreFont font.Face

// Load parses the embedded fonts. It must be called before the first frame is drawn.
func Load() error {
	if ScoreFont != nil {
		return nil
	}

	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	const dpi = 72
	ScoreFont = truetype.NewFace(tt, &truetype.Options{
		Size:    ScoreFontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	return nil
}
