package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Label  FontName = "label"  // Enemy HP labels
	Normal FontName = "normal" // HUD and overlay text
	Banner FontName = "banner" // YOU WON
)

// Pixel sizes of the built-in faces
const (
	labelSize  = 15
	normalSize = 20
	bannerSize = 60
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the game draws with, using Go Regular.
func LoadDefaults() error {
	for name, size := range map[FontName]float64{
		Label:  labelSize,
		Normal: normalSize,
		Banner: bannerSize,
	} {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
