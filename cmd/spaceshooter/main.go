package main

import (
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"chosenoffset.com/spaceshooter/internal/assets"
	"chosenoffset.com/spaceshooter/internal/audio"
	"chosenoffset.com/spaceshooter/internal/config"
	"chosenoffset.com/spaceshooter/internal/entity"
	"chosenoffset.com/spaceshooter/internal/game"
	ebitenrender "chosenoffset.com/spaceshooter/internal/render/ebiten"
)

func main() {
	configPath := config.GetEnv(config.EnvConfigPath, config.DefaultConfigPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	// Audio is optional; every failure leaves the game silent
	var laserCue entity.Cue = audio.Silent{}
	sounds := audio.NewSoundManager(cfg.EffectiveVolume())
	if err := sounds.Initialize(); err != nil {
		log.Printf("Warning: Failed to initialize audio: %v", err)
	} else {
		defer sounds.Cleanup()
		cue, err := sounds.LoadCue(filepath.Join(cfg.Assets.Dir, cfg.Assets.LaserSound))
		if err != nil {
			log.Printf("Warning: Failed to load laser sound: %v", err)
		} else {
			laserCue = cue
		}
	}

	log.Printf("Loading assets from %s...", cfg.Assets.Dir)
	loader := assets.NewFSLoader(os.DirFS(cfg.Assets.Dir))
	gameAssets := assets.Load(renderer, loader, cfg.Assets.Background, config.ScreenWidth, config.ScreenHeight, rng)

	gameManager := game.NewManager(renderer, inputMgr, gameAssets, rng, config.ScreenWidth, config.ScreenHeight)
	gameManager.SetLaserCue(laserCue)

	// Set up the window
	engine.SetWindowSize(cfg.WindowSize())
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetTPS(config.FPS)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
