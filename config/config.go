/*
Package config loads a goprops validation policy from a YAML file and the
environment.

Layers, highest precedence last:

 1. Optional YAML file with top-level keys `enabled` and `log_level`.
 2. Environment variables with the configured prefix (GOPROPS_ by default),
    lowercased after the prefix: GOPROPS_ENABLED, GOPROPS_LOG_LEVEL.

Keys absent from every layer are left unset, so Apply only changes what was
configured.
*/
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	goprops "github.com/reoring/goprops"
)

// DefaultEnvPrefix is used when Options.EnvPrefix is empty.
const DefaultEnvPrefix = "GOPROPS_"

const (
	keyEnabled  = "enabled"
	keyLogLevel = "log_level"
)

// ErrInvalidEnabled is returned when `enabled` is not a boolean.
var ErrInvalidEnabled = errors.New("config: enabled must be a boolean")

// Options selects the configuration sources.
type Options struct {
	File      string      // YAML file; empty skips the file layer.
	EnvPrefix string      // Defaults to DefaultEnvPrefix.
	NoEnv     bool        // Skip the environment layer.
	Logger    *zap.Logger // Debug output; nil is silent.
}

// Load merges the configured layers into a partial update.
func Load(opts Options) (goprops.ConfigOptions, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	k := koanf.New(".")

	if opts.File != "" {
		if err := k.Load(file.Provider(opts.File), yaml.Parser()); err != nil {
			log.Error("goprops config file load failed", zap.String("file", opts.File), zap.Error(err))
			return goprops.ConfigOptions{}, fmt.Errorf("config: load %s: %w", opts.File, err)
		}
		log.Debug("goprops config file loaded", zap.String("file", opts.File))
	}

	if !opts.NoEnv {
		prefix := opts.EnvPrefix
		if prefix == "" {
			prefix = DefaultEnvPrefix
		}
		if err := k.Load(env.Provider(prefix, ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, prefix))
		}), nil); err != nil {
			log.Error("goprops config env overlay failed", zap.Error(err))
			return goprops.ConfigOptions{}, fmt.Errorf("config: env: %w", err)
		}
	}

	var out goprops.ConfigOptions
	if k.Exists(keyEnabled) {
		b, err := toBool(k.Get(keyEnabled))
		if err != nil {
			return goprops.ConfigOptions{}, err
		}
		out.Enabled = &b
	}
	if k.Exists(keyLogLevel) {
		lvl := strings.TrimSpace(k.String(keyLogLevel))
		if _, err := goprops.ParseLogLevel(lvl); err != nil {
			return goprops.ConfigOptions{}, fmt.Errorf("config: %w", err)
		}
		out.LogLevel = &lvl
	}
	log.Debug("goprops config loaded",
		zap.Bool("enabled_set", out.Enabled != nil),
		zap.Bool("log_level_set", out.LogLevel != nil),
	)
	return out, nil
}

// Apply loads opts and applies the result to st. st is untouched on error.
func Apply(st *goprops.Store, opts Options) error {
	co, err := Load(opts)
	if err != nil {
		return err
	}
	return st.SetConfig(co)
}

func toBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return false, fmt.Errorf("%w: %q", ErrInvalidEnabled, x)
		}
		return b, nil
	}
	return false, fmt.Errorf("%w: %v", ErrInvalidEnabled, v)
}
