package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// ThemeConfig holds the palette of one level
type ThemeConfig struct {
	Name   string // shown in the HUD
	Sky    color.RGBA
	Ground color.RGBA
	Tree   color.RGBA
}

// SceneryConfig contains background decoration values
type SceneryConfig struct {
	GroundHeight  float64 // ground band at the bottom of the screen
	PlatformColor color.RGBA

	// Trees
	TreeStart   float64
	TreeSpacing float64
	TrunkWidth  float64
	TrunkHeight float64
	TrunkColor  color.RGBA
	CrownRadius float64
	CullMargin  float64 // trees this far off screen are still drawn

	// Clouds
	CloudColor    color.RGBA
	CloudY        float64
	CloudWidth    float64
	CloudHeight   float64
	CloudSpacing  float64
	CloudSpeed    float64 // multiplier on the level's sky phase
	CloudMinIndex int
	CloudMaxIndex int
}

// ActorStyleConfig contains actor drawing values
type ActorStyleConfig struct {
	PlayerColor     color.RGBA
	PlayerHeadColor color.RGBA
	HeadRadius      float64
	EnemyColor      color.RGBA

	// Sword
	SwordColor       color.RGBA
	SwordEdgeColor   color.RGBA
	SwordOffsetY     float64
	SwordIdleWidth   float64
	SwordIdleHeight  float64
	SwordSwingWidth  float64
	SwordSwingHeight float64
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarX       float64
	HealthBarY       float64
	HealthBarWidth   float64
	HealthBarHeight  float64
	HealthBarFgColor color.RGBA
	HealthBarBorder  float64
	HealthBarOutline color.RGBA
	LevelNameColor   color.RGBA
	FadeColor        color.RGBA

	HUDFontSize   float64
	DebugFontSize float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor  color.RGBA
	Title            string
	TitleColor       color.RGBA
	TitleFontSize    float64
	ButtonFontSize   float64
	ButtonWidth      int
	ButtonHeight     int
	ButtonSpacing    int
	ButtonColor      color.RGBA
	ButtonHoverColor color.RGBA
	ButtonPressColor color.RGBA
	ButtonTextColor  color.RGBA
	StartLabel       string
	QuitLabel        string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool   // Skip menu and go directly to game
	ShowHitboxes bool   // Outline actor boxes and the attack hitbox
	TuningPath   string // YAML overrides applied at startup
	WatchTuning  bool   // Reload TuningPath when it changes
	Seed         uint64 // Enemy placement seed, 0 = random
}

// Global configuration instances
var C *Config
var Themes map[string]ThemeConfig
var Scenery SceneryConfig
var ActorStyle ActorStyleConfig
var UI UIConfig
var Menu MenuConfig
var Debug DebugConfig

// StartLevel is the level a new session begins in.
const StartLevel = "forest"

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
		Title:  "Epic Fantasy 2D Game",
	}

	Themes = map[string]ThemeConfig{
		"forest": {
			Name:   "Forest",
			Sky:    color.RGBA{135, 206, 235, 255},
			Ground: color.RGBA{34, 139, 34, 255},
			Tree:   color.RGBA{34, 139, 34, 255},
		},
		"earth": {
			Name:   "Earth",
			Sky:    color.RGBA{210, 180, 140, 255},
			Ground: color.RGBA{160, 82, 45, 255},
			Tree:   color.RGBA{85, 107, 47, 255},
		},
		"desert": {
			Name:   "Desert",
			Sky:    color.RGBA{255, 236, 139, 255},
			Ground: color.RGBA{238, 214, 175, 255},
			Tree:   color.RGBA{205, 133, 63, 255},
		},
	}

	Scenery = SceneryConfig{
		GroundHeight:  50,
		PlatformColor: color.RGBA{120, 72, 0, 255},

		TreeStart:   100,
		TreeSpacing: 250,
		TrunkWidth:  18,
		TrunkHeight: 120,
		TrunkColor:  color.RGBA{139, 69, 19, 255},
		CrownRadius: 45,
		CullMargin:  100,

		CloudColor:    White,
		CloudY:        80,
		CloudWidth:    100,
		CloudHeight:   60,
		CloudSpacing:  300,
		CloudSpeed:    50,
		CloudMinIndex: -1,
		CloudMaxIndex: 2,
	}

	ActorStyle = ActorStyleConfig{
		PlayerColor:     color.RGBA{0, 0, 255, 255},
		PlayerHeadColor: color.RGBA{0, 0, 200, 255},
		HeadRadius:      15,
		EnemyColor:      color.RGBA{255, 0, 0, 255},

		SwordColor:       color.RGBA{192, 192, 192, 255},
		SwordEdgeColor:   color.RGBA{150, 150, 150, 255},
		SwordOffsetY:     30,
		SwordIdleWidth:   10,
		SwordIdleHeight:  40,
		SwordSwingWidth:  40,
		SwordSwingHeight: 10,
	}

	UI = UIConfig{
		HealthBarX:       10,
		HealthBarY:       10,
		HealthBarWidth:   200,
		HealthBarHeight:  20,
		HealthBarFgColor: color.RGBA{34, 139, 34, 255},
		HealthBarBorder:  2,
		HealthBarOutline: White,
		LevelNameColor:   White,
		FadeColor:        Black,

		HUDFontSize:   16,
		DebugFontSize: 12,
	}

	Menu = MenuConfig{
		BackgroundColor:  Black,
		Title:            "Epic Fantasy Game",
		TitleColor:       Yellow,
		TitleFontSize:    40,
		ButtonFontSize:   24,
		ButtonWidth:      200,
		ButtonHeight:     50,
		ButtonSpacing:    20,
		ButtonColor:      color.RGBA{50, 150, 50, 255},
		ButtonHoverColor: color.RGBA{100, 200, 100, 255},
		ButtonPressColor: color.RGBA{40, 110, 40, 255},
		ButtonTextColor:  White,
		StartLabel:       "Start Game",
		QuitLabel:        "Quit",
	}
}
