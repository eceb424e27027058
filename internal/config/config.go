// Package config loads the settings shared by the signin commands.
//
// Precedence, lowest first: built-in defaults, signin.yaml (the working
// directory, then the user config dir, or the file given with --config),
// variables from a .env file, SIGNIN_* environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SIGNIN"

var configNames = []string{"signin.yaml", "signin.yml"}

// Config holds every setting used by the CLI, the development server and
// the terminal client.
type Config struct {
	Listen       string `mapstructure:"listen"`
	StaticDir    string `mapstructure:"static_dir"`
	AccountsFile string `mapstructure:"accounts_file"`
	APIBaseURL   string `mapstructure:"api_base_url"`
	Destination  string `mapstructure:"destination"`
	Language     string `mapstructure:"language"`
	Log          Log    `mapstructure:"log"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults returns the built-in values keyed like the yaml file.
func Defaults() map[string]any {
	return map[string]any{
		"listen":        ":8080",
		"static_dir":    "./public",
		"accounts_file": "./accounts.yaml",
		"api_base_url":  "http://localhost:8080",
		"destination":   "/error",
		"language":      "en",
		"log.level":     "info",
		"log.format":    "text",
	}
}

// userConfigDir returns the directory searched for signin.yaml after the
// working directory.
func userConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "signin"), nil
}

// findConfigFile returns the first signin.yaml or signin.yml in the working
// directory or the user config dir, or "" when there is none. Files without
// an extension are never considered: a built binary named signin sits in the
// same directory.
func findConfigFile() string {
	dirs := []string{"."}
	if dir, err := userConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path
			}
		}
	}
	return ""
}

// loadDotEnv exports the variables of envFile that are not already set.
// A missing file is not an error.
func loadDotEnv(envFile string) error {
	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logrus.WithField("file", envFile).Debug("no .env file, using environment")
			return nil
		}
		return fmt.Errorf("config: %s: %w", envFile, err)
	}
	return nil
}

// Load resolves the configuration. cmd may be nil; when set, its flags
// override every other source. configFile, when not empty, must exist.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	var c Config

	if err := loadDotEnv(".env"); err != nil {
		return c, err
	}

	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if filepath.Ext(configFile) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// bindFlags maps flags such as --static-dir and --log-level onto the keys
// static_dir and log.level.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key := flagKey(f.Name)
		if _, known := Defaults()[key]; !known {
			return
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("config: bind --%s: %w", f.Name, err)
		}
	})
	return bindErr
}

func flagKey(name string) string {
	if strings.HasPrefix(name, "log-") {
		return "log." + strings.TrimPrefix(name, "log-")
	}
	return strings.ReplaceAll(name, "-", "_")
}
