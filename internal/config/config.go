package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are mapped to keys,
// so BINSTRUCT_LOG_LEVEL sets log.level and BINSTRUCT_DRY_RUN sets dry_run.
const EnvPrefix = "BINSTRUCT_"

// Config drives one run of the generator.
type Config struct {
	// Dir is the directory packages are loaded from.
	Dir string `koanf:"dir" validate:"required"`
	// Patterns are go/packages patterns relative to Dir.
	Patterns []string `koanf:"patterns" validate:"min=1,dive,required"`
	// Output is the root generated files are written under.
	Output string `koanf:"output" validate:"required"`
	// Marker is the comment directive that marks a struct declaration.
	Marker string `koanf:"marker" validate:"required,startswith=//"`
	// Tag is the struct tag key holding size declarations.
	Tag string `koanf:"tag" validate:"required"`
	// Exclude lists doublestar globs of source files to skip.
	Exclude []string `koanf:"exclude"`
	Tests   bool     `koanf:"tests"`
	Workers int      `koanf:"workers" validate:"min=1"`
	DryRun  bool     `koanf:"dry_run"`
	Log     Log      `koanf:"log"`
}

type Log struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `koanf:"json"`
}

func Default() *Config {
	return &Config{
		Dir:      ".",
		Patterns: []string{"./..."},
		Output:   ".",
		Marker:   "//binstruct:struct",
		Tag:      "binstruct",
		Exclude:  []string{},
		Workers:  runtime.NumCPU(),
		Log:      Log{Level: "info"},
	}
}

// Load builds the configuration from defaults, then the environment, then
// overrides, later sources winning. Override keys use koanf paths such as "log.level".
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// transformEnv maps BINSTRUCT_LOG_JSON to log.json and BINSTRUCT_DRY_RUN to dry_run.
func transformEnv(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest, value
	}
	return key, value
}
