package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/lulzmaku/assets"
	"github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/fonts"
	"github.com/automoto/lulzmaku/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds   image.Rectangle
	director *scenes.Director
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("load fonts", "err", err)
	}
	assets.PreloadImages()

	return &Game{
		bounds:   image.Rectangle{},
		director: scenes.NewDirector(),
	}
}

func (g *Game) Update() error {
	g.director.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.director.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	stageFile := flag.String("stage", config.Debug.StageFile, "embedded stage file to play (.tmx or .yaml)")
	hitboxes := flag.Bool("hitboxes", config.Debug.ShowHitboxes, "draw hit shapes and broad-phase boxes")
	skipTitle := flag.Bool("skip-title", config.Debug.SkipTitle, "start on the gameplay screen")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	config.Debug.StageFile = *stageFile
	config.Debug.ShowHitboxes = *hitboxes
	config.Debug.SkipTitle = *skipTitle

	log.SetPrefix("lulzmaku")
	log.SetReportTimestamp(true)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if names, err := assets.StageNames(); err == nil {
		log.Debug("embedded stages", "files", names)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.WindowTitle)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Error("game exited", "err", err)
		os.Exit(1)
	}
}
