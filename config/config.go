package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFiles = []string{
		"tictactoe-local/config.json",
		"tictactoe-local/config.yaml",
	}
	logFile = "tictactoe-local/tictactoe.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Colors struct {
	BoardColor        int `json:"board" yaml:"board"`
	LineColor         int `json:"line" yaml:"line"`
	XColor            int `json:"x" yaml:"x"`
	OColor            int `json:"o" yaml:"o"`
	CursorColorFG     int `json:"cursor_fg" yaml:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg" yaml:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg" yaml:"last_played_bg"`
}

type Symbols struct {
	X     rune `json:"x" yaml:"x"`
	O     rune `json:"o" yaml:"o"`
	Empty rune `json:"empty" yaml:"empty"`
}

type Theme struct {
	DrawCursorBackground     bool    `json:"draw_cursor_bg" yaml:"draw_cursor_bg"`
	DrawLastPlayedBackground bool    `json:"draw_last_played_bg" yaml:"draw_last_played_bg"`
	Colors                   Colors  `json:"colors" yaml:"colors"`
	Symbols                  Symbols `json:"symbols" yaml:"symbols"`
}

// LogConfig controls the debug log. The terminal belongs to the UI, so logs
// always go to a file.
type LogConfig struct {
	Level string `json:"level" yaml:"level" env:"TICTACTOE_LOG_LEVEL"`
	File  string `json:"file" yaml:"file" env:"TICTACTOE_LOG_FILE"`
}

type Config struct {
	Theme Theme     `json:"theme" yaml:"theme"`
	Log   LogConfig `json:"log" yaml:"log"`
}

// InitConfig loads the config file from the XDG config dirs, if any, on top of
// the defaults and applies environment overrides.
func InitConfig() (*Config, error) {
	for _, name := range cfgFiles {
		if absPath, err := xdg.SearchConfigFile(name); err == nil {
			return LoadFile(absPath)
		}
	}
	config := DefaultConfig
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return finish(&config)
}

// Default returns the built-in config, ignoring config files and the
// environment.
func Default() (*Config, error) {
	config := DefaultConfig
	return finish(&config)
}

// LoadFile loads a JSON or YAML config file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return finish(&config)
}

func finish(c *Config) (*Config, error) {
	if c.Log.File == "" {
		path, err := xdg.StateFile(logFile)
		if err != nil {
			return nil, fmt.Errorf("resolve log file: %w", err)
		}
		c.Log.File = path
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.X, c.Theme.Symbols.O, c.Theme.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Theme.Symbols.X == c.Theme.Symbols.O {
		return &InvalidConfig{"X and O symbols must differ"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// Save writes the config as JSON to the user's XDG config dir and returns the
// path written.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFiles[0])
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}
