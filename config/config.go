// Package config holds runtime settings for the simulator, the batch
// runner and the shell. Settings come from an optional gridle.yaml in
// the working directory and from GRIDLE_-prefixed environment
// variables; env wins.
package config

import (
	"errors"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/gridlegame/gridle/game"
)

type Config struct {
	// DictionaryPath points at a word<space>count file. Empty means
	// the built-in dictionary.
	DictionaryPath string
	// AnswersPath points at a whitespace-separated answer list for
	// autoplay. Empty means the built-in list.
	AnswersPath string
	// MaxAttempts is the per-game turn limit.
	MaxAttempts int
	// Threads is the autoplay worker count.
	Threads int
	// AutoplayLogFile receives one CSV row per autoplay game when set.
	AutoplayLogFile string
	// GameLogFile receives a YAML document per autoplay game when set.
	GameLogFile string
	Debug       bool
}

func DefaultConfig() *Config {
	return &Config{
		MaxAttempts: game.DefaultMaxAttempts,
		Threads:     runtime.NumCPU(),
	}
}

// Load fills the config from gridle.yaml (if present) and the
// environment.
func (c *Config) Load() error {
	v := viper.New()
	v.SetEnvPrefix("gridle")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("dictionary-path", "")
	v.SetDefault("answers-path", "")
	v.SetDefault("max-attempts", game.DefaultMaxAttempts)
	v.SetDefault("threads", runtime.NumCPU())
	v.SetDefault("autoplay-log-file", "")
	v.SetDefault("game-log-file", "")
	v.SetDefault("debug", false)

	v.SetConfigName("gridle")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	c.DictionaryPath = v.GetString("dictionary-path")
	c.AnswersPath = v.GetString("answers-path")
	c.MaxAttempts = v.GetInt("max-attempts")
	c.Threads = v.GetInt("threads")
	c.AutoplayLogFile = v.GetString("autoplay-log-file")
	c.GameLogFile = v.GetString("game-log-file")
	c.Debug = v.GetBool("debug")

	if c.MaxAttempts < 1 {
		return errors.New("max-attempts must be at least 1")
	}
	if c.Threads < 1 {
		return errors.New("threads must be at least 1")
	}
	return nil
}
