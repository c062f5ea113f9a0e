package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "ELEVSIM_"

// ReadEnvFile returns the key/value pairs of a .env file. A missing file is not an error.
func ReadEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return env, nil
}

// ApplyEnv overrides fields from ELEVSIM_* keys. Process environment wins over the file values.
func ApplyEnv(c Config, fileEnv map[string]string) (Config, error) {
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			return v, true
		}
		v, ok := fileEnv[envPrefix+key]
		return v, ok
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"MIN_FLOOR", &c.MinFloor},
		{"MAX_FLOOR", &c.MaxFloor},
		{"START_FLOOR", &c.StartFloor},
		{"NUM_ELEVATORS", &c.NumElevators},
		{"CAPACITY", &c.Capacity},
	}
	for _, field := range ints {
		raw, ok := lookup(field.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c, fmt.Errorf("%s%s: %w", envPrefix, field.key, err)
		}
		*field.dst = n
	}

	if raw, ok := lookup("STEP_DURATION"); ok {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return c, fmt.Errorf("%sSTEP_DURATION: %w", envPrefix, err)
		}
		c.StepDuration = d
	}
	if raw, ok := lookup("FULL_FLEET_POLICY"); ok {
		c.FullFleetPolicy = FullFleetPolicy(raw)
	}
	if raw, ok := lookup("LOG_LEVEL"); ok {
		c.LogLevel = raw
	}
	return c, nil
}
