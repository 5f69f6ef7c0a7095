package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPath       = "files/resolutions.csv"
	DefaultBackupPath = "files/.backups"
	DefaultBackupKeep = 10

	configPathEnv = "RESOLUTION_CONFIG_PATH"
)

// Config locates the backing file and the optional snapshot store.
type Config interface {
	Path() string
	Backups() bool
	BackupPath() string
	BackupKeep() int
}

// LoadConfig reads .resolution.{yaml,json,toml} from $RESOLUTION_CONFIG_PATH or the
// working directory, then RESOLUTION_* env vars, then flags. A flag named "file"
// overrides path. A missing config file is fine, a broken one is not.
func LoadConfig(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("backups.enabled", false)
	v.SetDefault("backups.path", DefaultBackupPath)
	v.SetDefault("backups.keep", DefaultBackupKeep)
	v.SetConfigName(".resolution")
	v.SetEnvPrefix("RESOLUTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(configPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if flags != nil {
		if f := flags.Lookup("file"); f != nil {
			if err := v.BindPFlag("path", f); err != nil {
				return nil, fmt.Errorf("bind file flag: %w", err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expand path: %w", err)
	}
	backupPath, err := homedir.Expand(v.GetString("backups.path"))
	if err != nil {
		return nil, fmt.Errorf("expand backups.path: %w", err)
	}

	return &fileConfig{
		File:        path,
		Snapshots:   v.GetBool("backups.enabled"),
		SnapshotDir: backupPath,
		Keep:        v.GetInt("backups.keep"),
		Source:      v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	File        string `json:"path"`
	Snapshots   bool   `json:"backups"`
	SnapshotDir string `json:"backupPath"`
	Keep        int    `json:"backupKeep"`
	Source      string `json:"-"`
}

func (f *fileConfig) Path() string {
	return f.File
}

func (f *fileConfig) Backups() bool {
	return f.Snapshots
}

func (f *fileConfig) BackupPath() string {
	return f.SnapshotDir
}

func (f *fileConfig) BackupKeep() int {
	return f.Keep
}

// ConfigFile returns the config file that was read, or "" when defaults were used.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.Source
	}
	return ""
}
