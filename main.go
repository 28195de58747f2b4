// main.go
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/trvswgnr/gopher-shooter/config"
	"github.com/trvswgnr/gopher-shooter/level"
	"github.com/trvswgnr/gopher-shooter/sim"
)

func main() {
	fs := pflag.NewFlagSet("gopher-shooter", pflag.ExitOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	path, _ := fs.GetString("config")

	cfg, err := config.Load(path, fs)
	if err != nil {
		log.Fatal(err)
	}

	rng := sim.NewPRNG(cfg.World.Seed)

	m, err := loadMap(cfg, rng)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("world seed %d, map %dx%d", rng.Seed, m.Width(), m.Height())

	clock := sim.NewPausableClock(sim.SystemClock{})
	g := NewGame(cfg, sim.NewState(m, cfg.Rules(), clock, rng), clock)
	g.Run()
}

// loadMap builds the level and refuses one the player cannot start on.
func loadMap(cfg *config.Config, rng *sim.PRNG) (*level.TileMap, error) {
	m, err := readMap(cfg, rng)
	if err != nil {
		return nil, err
	}
	if err := cfg.Rules().CheckMap(m); err != nil {
		return nil, fmt.Errorf("level %q: %w", cfg.World.Level, err)
	}
	return m, nil
}

// readMap picks the generated map, a PNG, or a text file of rows.
func readMap(cfg *config.Config, rng *sim.PRNG) (*level.TileMap, error) {
	w := cfg.World
	if w.Level == "" {
		return level.Generate(w.Width, w.Height, w.TileSize, rng, cfg.GenOptions())
	}

	f, err := os.Open(w.Level)
	if err != nil {
		return nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(w.Level), ".png") {
		return level.FromImage(f, w.TileSize)
	}

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r "); line != "" {
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return level.FromRows(rows, w.TileSize)
}
