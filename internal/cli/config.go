package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/flights/internal/paths"
	"github.com/mesh-intelligence/flights/internal/search"
	"github.com/mesh-intelligence/flights/internal/workers"
	"github.com/mesh-intelligence/flights/pkg/types"
)

// Config keys.
const (
	keyBackend         = "backend"
	keyDataDir         = "data_dir"
	keyLogLevel        = "log_level"
	keyMaxConnections  = "search.max_connections"
	keyTimeout         = "search.timeout"
	keyReferencePolicy = "search.reference_policy"
	keyDistanceSlack   = "search.distance_slack"
	keyMaxConcurrency  = "search.max_concurrency"
	keyMaxWorkers      = "store.max_workers"
)

const (
	defaultLogLevel       = "warn"
	defaultMaxConnections = 2
	defaultTimeout        = 30 * time.Second
)

// settings is the resolved configuration of one invocation.
type settings struct {
	ConfigDir       string
	DataDir         string
	Backend         string
	LogLevel        string
	MaxConnections  int
	Timeout         time.Duration
	ReferencePolicy search.ReferencePolicy
	DistanceSlack   float64
	MaxConcurrency  int
	MaxWorkers      int
}

// configFile is the structure written to config.yaml by init.
type configFile struct {
	Backend  string        `yaml:"backend"`
	DataDir  string        `yaml:"data_dir,omitempty"`
	LogLevel string        `yaml:"log_level"`
	Search   searchSection `yaml:"search"`
	Store    storeSection  `yaml:"store"`
}

type searchSection struct {
	MaxConnections  int     `yaml:"max_connections"`
	Timeout         string  `yaml:"timeout"`
	ReferencePolicy string  `yaml:"reference_policy"`
	DistanceSlack   float64 `yaml:"distance_slack"`
	MaxConcurrency  int     `yaml:"max_concurrency"`
}

type storeSection struct {
	MaxWorkers int `yaml:"max_workers"`
}

func defaultConfigFile(dataDir string) configFile {
	return configFile{
		Backend:  types.BackendSQLite,
		DataDir:  dataDir,
		LogLevel: defaultLogLevel,
		Search: searchSection{
			MaxConnections:  defaultMaxConnections,
			Timeout:         defaultTimeout.String(),
			ReferencePolicy: string(search.ReferenceFirst),
			DistanceSlack:   search.DefaultDistanceSlack,
			MaxConcurrency:  0,
		},
		Store: storeSection{MaxWorkers: workers.DefaultMaxWorkers},
	}
}

// newViper returns a viper instance carrying every default. FLIGHTS_*
// environment variables override config.yaml, e.g. FLIGHTS_SEARCH_TIMEOUT.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyBackend, types.BackendSQLite)
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyMaxConnections, defaultMaxConnections)
	v.SetDefault(keyTimeout, defaultTimeout)
	v.SetDefault(keyReferencePolicy, string(search.ReferenceFirst))
	v.SetDefault(keyDistanceSlack, search.DefaultDistanceSlack)
	v.SetDefault(keyMaxConcurrency, 0)
	v.SetDefault(keyMaxWorkers, workers.DefaultMaxWorkers)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("FLIGHTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlag lets a command-line flag override the matching config key when
// the flag is set.
func (a *app) bindFlag(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag.Name, err))
	}
}

// load reads config.yaml from the resolved config directory and resolves
// every setting. A missing config.yaml is not an error.
func (a *app) load() error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolving config directory: %w", err)
	}

	configPath := paths.ConfigFile(configDir)
	if _, err := os.Stat(configPath); err == nil {
		a.v.SetConfigFile(configPath)
		if err := a.v.ReadInConfig(); err != nil {
			return userError("reading %s: %w", configPath, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return sysError("stat config file: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.v.GetString(keyDataDir))
	if err != nil {
		return sysError("resolving data directory: %w", err)
	}

	policy, err := search.ParseReferencePolicy(a.v.GetString(keyReferencePolicy))
	if err != nil {
		return userError("%s: %w", keyReferencePolicy, err)
	}

	a.cfg = settings{
		ConfigDir:       configDir,
		DataDir:         dataDir,
		Backend:         a.v.GetString(keyBackend),
		LogLevel:        a.v.GetString(keyLogLevel),
		MaxConnections:  a.v.GetInt(keyMaxConnections),
		Timeout:         a.v.GetDuration(keyTimeout),
		ReferencePolicy: policy,
		DistanceSlack:   a.v.GetFloat64(keyDistanceSlack),
		MaxConcurrency:  a.v.GetInt(keyMaxConcurrency),
		MaxWorkers:      a.v.GetInt(keyMaxWorkers),
	}

	logger, err := newLogger(a.stderr, a.cfg.LogLevel)
	if err != nil {
		return userError("%s: %w", keyLogLevel, err)
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		"config_dir", a.cfg.ConfigDir, "data_dir", a.cfg.DataDir, "backend", a.cfg.Backend)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether the file was written.
func writeConfigIfMissing(path, dataDir string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfigFile(dataDir)
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
