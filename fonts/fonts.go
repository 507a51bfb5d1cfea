package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	loadDefaults.Do(LoadDefaults)
	return getFont(f)
}

var (
	fonts        = map[FontName]font.Face{}
	loadDefaults sync.Once
)

// LoadDefaults loads the Go fonts shipped with x/image.
func LoadDefaults() {
	LoadFontWithSize(HUD, goregular.TTF, 16)
	LoadFontWithSize(Small, goregular.TTF, 12)
	LoadFontWithSize(Title, gobold.TTF, 40)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("parse font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
