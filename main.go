package main

import (
	"flag"
	"image"
	"log"
	"math/rand/v2"
	"time"

	"github.com/automoto/epicfantasy/assets"
	"github.com/automoto/epicfantasy/config"
	"github.com/automoto/epicfantasy/fonts"
	"github.com/automoto/epicfantasy/scenes"
	"github.com/automoto/epicfantasy/shared/core"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool

	levels  map[core.LevelID]*core.Level
	session *core.Session
	started time.Time
	watcher *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(levels map[core.LevelID]*core.Level, watcher *config.TuningWatcher) *Game {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds:  image.Rectangle{},
		levels:  levels,
		watcher: watcher,
	}

	if config.Debug.SkipMenu {
		g.startGame()
	} else {
		g.showMenu()
	}

	return g
}

// startGame enters the world, creating the session the first time only.
func (g *Game) startGame() {
	if g.session == nil {
		session, err := core.NewSession(g.levels, core.LevelID(config.StartLevel))
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
		g.session = session
		g.started = time.Now()
	}
	g.ChangeScene(scenes.NewWorldScene(g, g.session, g.started, g.watcher, g.showMenu))
}

func (g *Game) showMenu() {
	g.ChangeScene(scenes.NewMenuScene(g, g.startGame))
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skip-menu", false, "Start directly in the first level")
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	seed := flag.Uint64("seed", 0, "Enemy placement seed (0 = random)")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.TuningPath = *tuningPath
	config.Debug.WatchTuning = *watch
	config.Debug.Seed = *seed

	var watcher *config.TuningWatcher
	if config.Debug.TuningPath != "" {
		t, err := config.LoadTuning(config.Debug.TuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
		log.Printf("Tuning loaded from %s", config.Debug.TuningPath)

		if config.Debug.WatchTuning {
			watcher, err = config.NewTuningWatcher(config.Debug.TuningPath)
			if err != nil {
				log.Printf("Warning: tuning hot reload disabled: %v", err)
			} else {
				defer watcher.Close()
			}
		}
	}

	if config.Debug.Seed == 0 {
		config.Debug.Seed = rand.Uint64()
	}
	log.Printf("Enemy placement seed: %d", config.Debug.Seed)
	rng := rand.New(rand.NewPCG(config.Debug.Seed, config.Debug.Seed))

	levels := core.BuildLevels(assets.MustLoadLevels(), rng)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(levels, watcher)); err != nil {
		log.Fatal(err)
	}
}
