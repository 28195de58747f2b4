// config.go

package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trvswgnr/gopher-shooter/level"
	"github.com/trvswgnr/gopher-shooter/model"
	"github.com/trvswgnr/gopher-shooter/raycast"
	"github.com/trvswgnr/gopher-shooter/sim"
)

// EnvPrefix namespaces environment overrides, e.g. RAYCAST_WORLD_SEED=42.
const EnvPrefix = "RAYCAST"

type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	View    ViewConfig    `mapstructure:"view"`
	World   WorldConfig   `mapstructure:"world"`
	Player  PlayerConfig  `mapstructure:"player"`
	Weapon  WeaponConfig  `mapstructure:"weapon"`
	Enemy   EnemyConfig   `mapstructure:"enemy"`
	Waves   WaveConfig    `mapstructure:"waves"`
	PowerUp PowerUpConfig `mapstructure:"powerup"`
	Input   InputConfig   `mapstructure:"input"`
	Sound   SoundConfig   `mapstructure:"sound"`
}

type WindowConfig struct {
	Title       string  `mapstructure:"title"`
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	RenderScale float64 `mapstructure:"render_scale"`
	Fullscreen  bool    `mapstructure:"fullscreen"`
	Vsync       bool    `mapstructure:"vsync"`
	Debug       bool    `mapstructure:"debug"`
}

type ViewConfig struct {
	FovDegrees      float64 `mapstructure:"fov_degrees"`
	MaxDepth        float64 `mapstructure:"max_depth"`
	WallHeight      float64 `mapstructure:"wall_height"`
	ColumnWidth     int     `mapstructure:"column_width"`
	SpriteScale     float64 `mapstructure:"sprite_scale"`
	BrightnessFloor float64 `mapstructure:"brightness_floor"`
}

// WorldConfig selects the map. Level may name a PNG or a text file of rows;
// empty means a procedurally generated map.
type WorldConfig struct {
	Seed              int64   `mapstructure:"seed"`
	Level             string  `mapstructure:"level"`
	Width             int     `mapstructure:"width"`
	Height            int     `mapstructure:"height"`
	TileSize          float64 `mapstructure:"tile_size"`
	LatticeStride     int     `mapstructure:"lattice_stride"`
	LatticeWallChance float64 `mapstructure:"lattice_wall_chance"`
	ScatterWallChance float64 `mapstructure:"scatter_wall_chance"`
}

type PlayerConfig struct {
	Radius        float64 `mapstructure:"radius"`
	Speed         float64 `mapstructure:"speed"`
	RotationSpeed float64 `mapstructure:"rotation_speed"`
	Health        int     `mapstructure:"health"`
	StartX        float64 `mapstructure:"start_x"`
	StartY        float64 `mapstructure:"start_y"`
	StartDegrees  float64 `mapstructure:"start_degrees"`
}

type WeaponConfig struct {
	Cooldown     time.Duration `mapstructure:"cooldown"`
	BulletSpeed  float64       `mapstructure:"bullet_speed"`
	BulletRadius float64       `mapstructure:"bullet_radius"`
	Damage       int           `mapstructure:"damage"`
}

type EnemyConfig struct {
	Radius         float64       `mapstructure:"radius"`
	Speed          float64       `mapstructure:"speed"`
	Health         int           `mapstructure:"health"`
	Damage         int           `mapstructure:"damage"`
	SpeedPerWave   float64       `mapstructure:"speed_per_wave"`
	HealthPerWave  int           `mapstructure:"health_per_wave"`
	StopDistance   float64       `mapstructure:"stop_distance"`
	AttackCooldown time.Duration `mapstructure:"attack_cooldown"`
	SpawnMinDist   float64       `mapstructure:"spawn_min_dist"`
	SpawnAttempts  int           `mapstructure:"spawn_attempts"`
}

type WaveConfig struct {
	EnemiesPerWave int           `mapstructure:"enemies_per_wave"`
	Increment      int           `mapstructure:"increment"`
	Max            int           `mapstructure:"max"`
	Cooldown       time.Duration `mapstructure:"cooldown"`
	ClearBonus     int           `mapstructure:"clear_bonus"`
	KillScore      int           `mapstructure:"kill_score"`
}

type PowerUpConfig struct {
	SpawnChance float64 `mapstructure:"spawn_chance"`
	Radius      float64 `mapstructure:"radius"`
	Heal        int     `mapstructure:"heal"`
	Score       int     `mapstructure:"score"`
	MinDist     float64 `mapstructure:"min_dist"`
	Attempts    int     `mapstructure:"attempts"`
}

type InputConfig struct {
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"`
	TouchSensitivity float64 `mapstructure:"touch_sensitivity"`
	JoystickRadius   float64 `mapstructure:"joystick_radius"`
	JoystickDeadZone float64 `mapstructure:"joystick_dead_zone"`
}

type SoundConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sample_rate"`
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"seed":       "world.seed",
	"level":      "world.level",
	"fullscreen": "window.fullscreen",
	"debug":      "window.debug",
	"sound":      "sound.enabled",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "Gopher Shooter")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.render_scale", 1.0)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.vsync", true)
	v.SetDefault("window.debug", false)

	v.SetDefault("view.fov_degrees", 60.0)
	v.SetDefault("view.max_depth", 800.0)
	v.SetDefault("view.wall_height", 100.0)
	v.SetDefault("view.column_width", 2)
	v.SetDefault("view.sprite_scale", 64.0)
	v.SetDefault("view.brightness_floor", 0.3)

	v.SetDefault("world.seed", 0)
	v.SetDefault("world.level", "")
	v.SetDefault("world.width", 20)
	v.SetDefault("world.height", 15)
	v.SetDefault("world.tile_size", 32.0)
	v.SetDefault("world.lattice_stride", 3)
	v.SetDefault("world.lattice_wall_chance", 0.35)
	v.SetDefault("world.scatter_wall_chance", 0.05)

	v.SetDefault("player.radius", 8.0)
	v.SetDefault("player.speed", 3.0)
	v.SetDefault("player.rotation_speed", 0.05)
	v.SetDefault("player.health", 100)
	v.SetDefault("player.start_x", 2.5)
	v.SetDefault("player.start_y", 2.5)
	v.SetDefault("player.start_degrees", 45.0)

	v.SetDefault("weapon.cooldown", "150ms")
	v.SetDefault("weapon.bullet_speed", 10.0)
	v.SetDefault("weapon.bullet_radius", 3.0)
	v.SetDefault("weapon.damage", 25)

	v.SetDefault("enemy.radius", 10.0)
	v.SetDefault("enemy.speed", 1.0)
	v.SetDefault("enemy.health", 50)
	v.SetDefault("enemy.damage", 10)
	v.SetDefault("enemy.speed_per_wave", 0.2)
	v.SetDefault("enemy.health_per_wave", 20)
	v.SetDefault("enemy.stop_distance", 15.0)
	v.SetDefault("enemy.attack_cooldown", "500ms")
	v.SetDefault("enemy.spawn_min_dist", 160.0)
	v.SetDefault("enemy.spawn_attempts", 50)

	v.SetDefault("waves.enemies_per_wave", 5)
	v.SetDefault("waves.increment", 2)
	v.SetDefault("waves.max", 7)
	v.SetDefault("waves.cooldown", "60s")
	v.SetDefault("waves.clear_bonus", 500)
	v.SetDefault("waves.kill_score", 100)

	v.SetDefault("powerup.spawn_chance", 0.001)
	v.SetDefault("powerup.radius", 10.0)
	v.SetDefault("powerup.heal", 25)
	v.SetDefault("powerup.score", 50)
	v.SetDefault("powerup.min_dist", 100.0)
	v.SetDefault("powerup.attempts", 50)

	v.SetDefault("input.mouse_sensitivity", 0.0015)
	v.SetDefault("input.touch_sensitivity", 0.005)
	v.SetDefault("input.joystick_radius", 50.0)
	v.SetDefault("input.joystick_dead_zone", 0.1)

	v.SetDefault("sound.enabled", true)
	v.SetDefault("sound.volume", 0.3)
	v.SetDefault("sound.sample_rate", 44100)
}

// RegisterFlags adds the command-line flags Load understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "path to a YAML, TOML or JSON config file")
	fs.Int64("seed", 0, "world seed, 0 picks one from the clock")
	fs.String("level", "", "PNG or text map to play instead of a generated one")
	fs.Bool("fullscreen", false, "start in fullscreen")
	fs.Bool("debug", false, "show debug overlay")
	fs.Bool("sound", true, "play sound effects")
}

// Load resolves defaults, the optional config file, RAYCAST_* environment
// variables and changed flags, in increasing priority.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		log.Printf("config loaded from %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var ErrInvalid = errors.New("invalid config")

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.RenderScale > 0, "render scale %v", c.Window.RenderScale)
	check(c.View.FovDegrees > 0 && c.View.FovDegrees < 180, "fov %v degrees", c.View.FovDegrees)
	check(c.View.MaxDepth > 0, "max depth %v", c.View.MaxDepth)
	check(c.View.ColumnWidth > 0 && c.View.ColumnWidth <= c.Window.Width, "column width %d", c.View.ColumnWidth)
	check(c.World.Width >= 3 && c.World.Height >= 3, "world size %dx%d", c.World.Width, c.World.Height)
	check(c.World.TileSize > 0, "tile size %v", c.World.TileSize)
	check(c.World.LatticeStride > 0, "lattice stride %d", c.World.LatticeStride)
	check(c.Player.Radius > 0 && c.Player.Radius < c.World.TileSize/2, "player radius %v", c.Player.Radius)
	check(c.Player.Health > 0, "player health %d", c.Player.Health)
	check(c.Weapon.BulletSpeed > 0 && c.Weapon.BulletSpeed < c.World.TileSize, "bullet speed %v", c.Weapon.BulletSpeed)
	check(c.Enemy.Health > 0, "enemy health %d", c.Enemy.Health)
	check(c.Waves.Max > 0, "max waves %d", c.Waves.Max)
	check(c.Waves.EnemiesPerWave >= 0 && c.Waves.Increment >= 0, "wave size %d+%d", c.Waves.EnemiesPerWave, c.Waves.Increment)
	check(c.PowerUp.SpawnChance >= 0 && c.PowerUp.SpawnChance <= 1, "powerup chance %v", c.PowerUp.SpawnChance)
	check(c.Sound.Volume >= 0 && c.Sound.Volume <= 1, "volume %v", c.Sound.Volume)

	return errors.Join(errs...)
}

// Rules converts the gameplay sections into simulation rules.
func (c *Config) Rules() sim.Rules {
	r := sim.DefaultRules()

	r.Player = model.PlayerStats{
		Radius:        c.Player.Radius,
		Speed:         c.Player.Speed,
		RotationSpeed: c.Player.RotationSpeed,
		MaxHealth:     c.Player.Health,
	}
	r.StartTileX = c.Player.StartX
	r.StartTileY = c.Player.StartY
	r.StartAngle = c.Player.StartDegrees * math.Pi / 180

	r.ShotCooldown = c.Weapon.Cooldown
	r.BulletSpeed = c.Weapon.BulletSpeed
	r.BulletRadius = c.Weapon.BulletRadius
	r.BulletDamage = c.Weapon.Damage

	r.Enemy = model.EnemyStats{
		Radius: c.Enemy.Radius,
		Speed:  c.Enemy.Speed,
		Health: c.Enemy.Health,
		Damage: c.Enemy.Damage,
	}
	r.EnemySpeedPerWave = c.Enemy.SpeedPerWave
	r.EnemyHealthPerWave = c.Enemy.HealthPerWave
	r.EnemyStopDistance = c.Enemy.StopDistance
	r.EnemyAttackCooldown = c.Enemy.AttackCooldown
	r.EnemySpawnMinDist = c.Enemy.SpawnMinDist
	r.EnemySpawnAttempts = c.Enemy.SpawnAttempts

	r.EnemiesPerWave = c.Waves.EnemiesPerWave
	r.EnemiesIncrement = c.Waves.Increment
	r.MaxWaves = c.Waves.Max
	r.WaveCooldown = c.Waves.Cooldown
	r.WaveClearBonus = c.Waves.ClearBonus
	r.KillScore = c.Waves.KillScore

	r.PowerUpSpawnChance = c.PowerUp.SpawnChance
	r.PowerUpRadius = c.PowerUp.Radius
	r.PowerUpHeal = c.PowerUp.Heal
	r.PowerUpScore = c.PowerUp.Score
	r.PowerUpMinDist = c.PowerUp.MinDist
	r.PowerUpAttempts = c.PowerUp.Attempts

	r.JoystickDeadZone = c.Input.JoystickDeadZone
	return r
}

// Projection is the ray caster projection for the render target.
func (c *Config) Projection() raycast.View {
	return raycast.View{
		Width:       c.Window.Width,
		Height:      c.Window.Height,
		Fov:         c.View.FovDegrees * math.Pi / 180,
		MaxDepth:    c.View.MaxDepth,
		WallHeight:  c.View.WallHeight,
		ColumnWidth: c.View.ColumnWidth,
	}
}

func (c *Config) SpriteOptions() raycast.SpriteOptions {
	opts := raycast.DefaultSpriteOptions()
	opts.Scale = c.View.SpriteScale
	opts.BrightnessFloor = c.View.BrightnessFloor
	return opts
}

func (c *Config) GenOptions() level.GenOptions {
	opts := level.DefaultGenOptions()
	opts.LatticeStride = c.World.LatticeStride
	opts.LatticeWallChance = c.World.LatticeWallChance
	opts.ScatterWallChance = c.World.ScatterWallChance
	return opts
}
