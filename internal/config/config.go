package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/Garsondee/Gridiron-Aces/internal/sim"
)

// EnvPrefix namespaces environment overrides, e.g. GRIDIRON_AUDIO_VOLUME.
const EnvPrefix = "GRIDIRON"

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "gridiron"

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sampleRate"`
	Muted      bool    `mapstructure:"muted"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// TelemetryConfig controls the metric exporter. An empty File writes to stdout.
type TelemetryConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	File     string  `mapstructure:"file"`
	Interval float64 `mapstructure:"interval"` // seconds between exports
}

// Config is the full runtime configuration. Controls maps an action name to
// one or more key names; viper lower-cases the action names.
type Config struct {
	Window    WindowConfig        `mapstructure:"window"`
	TPS       int                 `mapstructure:"tps"`
	Seed      int64               `mapstructure:"seed"`
	Team      string              `mapstructure:"team"`
	Log       LogConfig           `mapstructure:"log"`
	Audio     AudioConfig         `mapstructure:"audio"`
	Telemetry TelemetryConfig     `mapstructure:"telemetry"`
	Controls  map[string][]string `mapstructure:"controls"`
	Tuning    sim.Tuning          `mapstructure:"tuning"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:    WindowConfig{Width: 1280, Height: 720, Title: "Gridiron Aces"},
		TPS:       60,
		Seed:      1,
		Log:       LogConfig{Level: "info"},
		Audio:     AudioConfig{Enabled: true, Volume: 0.6, SampleRate: 44100},
		Telemetry: TelemetryConfig{Interval: 10},
		Controls:  map[string][]string{},
		Tuning:    sim.DefaultTuning(),
	}
}

func setDefaults(d Config) error {
	viper.SetDefault("window.width", d.Window.Width)
	viper.SetDefault("window.height", d.Window.Height)
	viper.SetDefault("window.title", d.Window.Title)
	viper.SetDefault("tps", d.TPS)
	viper.SetDefault("seed", d.Seed)
	viper.SetDefault("team", d.Team)

	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.file", d.Log.File)

	viper.SetDefault("audio.enabled", d.Audio.Enabled)
	viper.SetDefault("audio.volume", d.Audio.Volume)
	viper.SetDefault("audio.sampleRate", d.Audio.SampleRate)
	viper.SetDefault("audio.muted", d.Audio.Muted)

	viper.SetDefault("telemetry.enabled", d.Telemetry.Enabled)
	viper.SetDefault("telemetry.file", d.Telemetry.File)
	viper.SetDefault("telemetry.interval", d.Telemetry.Interval)

	// Every tuning field gets its own key so GRIDIRON_TUNING_<FIELD> is seen
	// by AutomaticEnv.
	var tuning map[string]any
	if err := mapstructure.Decode(d.Tuning, &tuning); err != nil {
		return fmt.Errorf("error flattening tuning defaults: %w", err)
	}
	for k, v := range tuning {
		viper.SetDefault("tuning."+k, v)
	}
	return nil
}

// Load reads configuration into the global viper instance and decodes it.
// An explicit path must exist; with an empty path a gridiron.{json,yaml,toml}
// in the working directory is used when present.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := setDefaults(cfg); err != nil {
		return cfg, err
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		viper.SetConfigName(DefaultFileName)
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return cfg, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %.2f outside [0,1]", c.Audio.Volume))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio sample rate %d must be positive", c.Audio.SampleRate))
	}
	if c.Telemetry.Enabled && c.Telemetry.Interval <= 0 {
		errs = append(errs, fmt.Errorf("telemetry interval %.2f must be positive", c.Telemetry.Interval))
	}
	errs = append(errs, validateTuning(c.Tuning)...)
	return errors.Join(errs...)
}

func validateTuning(tu sim.Tuning) []error {
	var errs []error
	if tu.FireInterval < 0 || tu.HitRadius <= 0 || tu.WaveSize <= 0 {
		errs = append(errs, errors.New("tuning: fireInterval, hitRadius and waveSize must be positive"))
	}
	if tu.Drag <= 0 || tu.Drag > 1 {
		errs = append(errs, fmt.Errorf("tuning: drag %.3f outside (0,1]", tu.Drag))
	}
	if tu.ProjectileLifetime <= 0 || tu.ProjectileSpeed <= 0 {
		errs = append(errs, errors.New("tuning: projectileLifetime and projectileSpeed must be positive"))
	}
	if tu.MaxHealth <= 0 || tu.ProjectileDamage < 0 {
		errs = append(errs, fmt.Errorf("tuning: maxHealth %.1f must be positive and projectileDamage non-negative", tu.MaxHealth))
	}
	if tu.EnemyFireChance < 0 || tu.EnemyFireChance > 1 {
		errs = append(errs, fmt.Errorf("tuning: enemyFireChance %.3f outside [0,1]", tu.EnemyFireChance))
	}
	return errs
}

// FrameDelta is the fixed simulation step for the configured tick rate.
func (c Config) FrameDelta() float64 {
	return 1 / float64(c.TPS)
}
