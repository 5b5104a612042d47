package store

import (
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where records live and which year they cover.
type Config interface {
	BasePath() string
	Year() int
}

// LoadConfig resolves configuration from a .yeargrid file in the working
// directory or YEARGRID_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.yeargrid.db")
	viper.SetDefault("year", 2026)
	viper.SetConfigName(".yeargrid") // .yaml is implicit
	viper.SetEnvPrefix("YEARGRID")
	viper.AutomaticEnv()

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path, TargetYear: viper.GetInt("year")}, nil
}

type fileConfig struct {
	Path       string `json:"path"`
	TargetYear int    `json:"year"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Year() int {
	return f.TargetYear
}
