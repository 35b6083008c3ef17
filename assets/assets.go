package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/lulzmaku/stage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed images
	imageFS embed.FS

	//go:embed stages
	stageFS embed.FS
)

// Embedded sprite names
const (
	ImageShip       = "ship.png"
	ImageEnemy      = "enemy.png"
	ImageBullet     = "bul.png"
	ImageHUD        = "hud.png"
	ImageSpace      = "space.png"
	ImageTitle      = "title.png"
	ImagePlayerShot = "plyrshot.png"
)

// AllImages lists every sprite the game draws.
var AllImages = []string{
	ImageShip,
	ImageEnemy,
	ImageBullet,
	ImageHUD,
	ImageSpace,
	ImageTitle,
	ImagePlayerShot,
}

// ImageLoader decodes embedded sprites on first use. A sprite that fails to
// decode is reported once and then treated as missing.
type ImageLoader struct {
	fsys   fs.FS
	cache  map[string]*ebiten.Image
	failed map[string]bool
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:   fsys,
		cache:  make(map[string]*ebiten.Image),
		failed: make(map[string]bool),
	}
}

// Image returns the decoded sprite, or nil if it could not be loaded.
func (l *ImageLoader) Image(name string) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}
	if l.failed[name] {
		return nil
	}

	img, err := l.load(name)
	if err != nil {
		l.failed[name] = true
		log.Warn("sprite unavailable, skipping", "sprite", name, "err", err)
		return nil
	}
	l.cache[name] = img
	return img
}

func (l *ImageLoader) load(name string) (*ebiten.Image, error) {
	imgBytes, err := fs.ReadFile(l.fsys, path.Join("images", name))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", name, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}
	return img, nil
}

var imageLoader = NewImageLoader(imageFS)

// GetImage returns an embedded sprite, or nil when it is unavailable.
func GetImage(name string) *ebiten.Image {
	return imageLoader.Image(name)
}

// PreloadImages decodes every sprite up front so the first gameplay frame
// does not stall.
func PreloadImages() {
	for _, name := range AllImages {
		imageLoader.Image(name)
	}
}

// LoadStage reads an embedded stage file from assets/stages.
func LoadStage(name string) (*stage.Stage, error) {
	return stage.Load(stageFS, path.Join("stages", name))
}

// StageNames lists the embedded stage files.
func StageNames() ([]string, error) {
	entries, err := fs.ReadDir(stageFS, "stages")
	if err != nil {
		return nil, fmt.Errorf("read stages directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
