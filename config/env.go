package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names read by Load.
const (
	EnvMaxCableLength  = "GRAPPLE_MAX_CABLE_LENGTH"
	EnvTearingDistance = "GRAPPLE_TEARING_DISTANCE"
	EnvTickRate        = "GRAPPLE_TICK_RATE"
	EnvPort            = "GRAPPLE_PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvSentryDSN       = "SENTRY_DSN"
	EnvStatsviewAddr   = "STATSVIEW_ADDR"
)

// Load reads an optional .env file at path and applies environment
// overrides to the package config. A missing file is not an error; a
// malformed number is.
func Load(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := envFloat(EnvMaxCableLength, &Session.MaxCableLength); err != nil {
		return err
	}
	if err := envFloat(EnvTearingDistance, &Session.TearingDistance); err != nil {
		return err
	}
	if err := envInt(EnvTickRate, &Server.TickRate); err != nil {
		return err
	}
	if err := envInt(EnvPort, &Server.Port); err != nil {
		return err
	}
	envString(EnvLogLevel, &Server.LogLevel)
	envString(EnvSentryDSN, &Server.SentryDSN)
	envString(EnvStatsviewAddr, &Server.StatsviewAddr)

	if Session.MaxCableLength < 0 {
		return fmt.Errorf("%s must not be negative", EnvMaxCableLength)
	}
	if Server.TickRate <= 0 {
		return fmt.Errorf("%s must be positive", EnvTickRate)
	}
	return nil
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = f
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = n
	return nil
}
