package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lanepath/lanegrid"
	"github.com/katalvlaran/lanepath/planner"
)

const (
	configFileName = "lanepath"
	configFileType = "yaml"
	envPrefix      = "LANEPATH"

	// Keys shared by the config file, environment and CLI flag binding.
	KeyFieldWidth    = "field.width"
	KeyFieldBreadth  = "field.breadth"
	KeyRoverWidth    = "rover.width"
	KeyRoverLength   = "rover.length"
	KeyExitCorner    = "exit.corner"
	KeyExitEdge      = "exit.edge"
	KeyExitAt        = "exit.at"
	KeyGapSize       = "gap.size"
	KeyGapEverySweep = "gap.every_sweep"
	KeyStorePath     = "store.path"
	KeyLogLevel      = "log.level"
)

// ErrInvalid reports a configuration that cannot describe a plan.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the resolved application configuration.
type Config struct {
	Field lanegrid.Dimensions
	Exit  ExitConfig
	Gap   GapConfig
	Store StoreConfig
	Log   LogConfig
}

// ExitConfig selects either a corner or a lane along an edge.
type ExitConfig struct {
	Corner string
	Edge   string
	At     int
}

// GapConfig controls unsown gaps around turns.
type GapConfig struct {
	Size       int
	EverySweep bool
}

// StoreConfig locates the plan history database.
type StoreConfig struct {
	Path string
}

// LogConfig sets the minimum slog level: debug, info, warn or error.
type LogConfig struct {
	Level string
}

// New returns a Viper instance with defaults and environment lookup set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyFieldWidth, 10.0)
	v.SetDefault(KeyFieldBreadth, 10.0)
	v.SetDefault(KeyRoverWidth, 1.0)
	v.SetDefault(KeyRoverLength, 1.0)
	v.SetDefault(KeyExitCorner, "bottom-left")
	v.SetDefault(KeyExitEdge, "")
	v.SetDefault(KeyExitAt, 0)
	v.SetDefault(KeyGapSize, planner.DefaultGapSize)
	v.SetDefault(KeyGapEverySweep, false)
	v.SetDefault(KeyStorePath, DefaultStorePath())
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// DefaultStorePath is $HOME/.lanepath/history.db, or ./.lanepath/history.db
// when no home directory is known.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}

	return filepath.Join(home, ".lanepath", "history.db")
}

// ReadFile loads an explicit config file, or searches the working directory
// and $HOME/.lanepath for lanepath.yaml when file is empty.
// A missing searched file is not an error; a missing explicit file is.
func ReadFile(v *viper.Viper, file string) error {
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".lanepath"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// Load builds a Config from v after ReadFile and any flag binding.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Field: lanegrid.Dimensions{
			FieldWidth:   v.GetFloat64(KeyFieldWidth),
			FieldBreadth: v.GetFloat64(KeyFieldBreadth),
			RoverWidth:   v.GetFloat64(KeyRoverWidth),
			RoverLength:  v.GetFloat64(KeyRoverLength),
		},
		Exit: ExitConfig{
			Corner: v.GetString(KeyExitCorner),
			Edge:   v.GetString(KeyExitEdge),
			At:     v.GetInt(KeyExitAt),
		},
		Gap: GapConfig{
			Size:       v.GetInt(KeyGapSize),
			EverySweep: v.GetBool(KeyGapEverySweep),
		},
		Store: StoreConfig{Path: v.GetString(KeyStorePath)},
		Log:   LogConfig{Level: v.GetString(KeyLogLevel)},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that do not need a grid to verify.
func (c Config) Validate() error {
	if c.Gap.Size < 0 {
		return fmt.Errorf("%w: gap size %d is negative", ErrInvalid, c.Gap.Size)
	}
	if c.Exit.Edge == "" {
		if _, err := lanegrid.ParseCorner(c.Exit.Corner); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	} else if _, err := lanegrid.ParseEdge(c.Exit.Edge); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}

	return nil
}

// Grid builds the lane grid from the field and rover dimensions.
func (c Config) Grid() (lanegrid.Grid, error) {
	return lanegrid.NewGrid(c.Field)
}

// ResolveExit resolves the configured exit on g. An edge, when set, takes
// precedence over the corner.
func (c Config) ResolveExit(g lanegrid.Grid) (lanegrid.ExitPoint, error) {
	if c.Exit.Edge != "" {
		edge, err := lanegrid.ParseEdge(c.Exit.Edge)
		if err != nil {
			return lanegrid.ExitPoint{}, err
		}
		return lanegrid.ResolveCustom(g, edge, c.Exit.At)
	}
	corner, err := lanegrid.ParseCorner(c.Exit.Corner)
	if err != nil {
		return lanegrid.ExitPoint{}, err
	}

	return lanegrid.ResolveCorner(g, corner)
}

// PlannerOptions translates the gap settings into planner options.
func (c Config) PlannerOptions() []planner.Option {
	return []planner.Option{
		planner.WithGapSize(c.Gap.Size),
		planner.WithGapEverySweep(c.Gap.EverySweep),
	}
}
