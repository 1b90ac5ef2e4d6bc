// Package config loads the test runner settings from an optional YAML file and an optional env file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the test runner settings. Command-line flags override these values.
type Config struct {
	Run      []string `yaml:"run"`       // regex patterns of tests to run
	Skip     []string `yaml:"skip"`      // regex patterns of tests not to run
	Debug    bool     `yaml:"debug"`     // show debug output for failed tests
	DebugAll bool     `yaml:"debug_all"` // show debug output for all tests
	DataFile string   `yaml:"data_file"` // CSV file for the CSV file source test
	OS       string   `yaml:"os"`        // overrides the OS seen by platform-specific tests
	EnvFile  string   `yaml:"env_file"`  // dotenv file with extra environment variables
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		DataFile: DefaultDataFile,
		EnvFile:  DefaultEnvFile,
	}
}

// Load reads YAML settings on top of the defaults. Unknown keys are an error.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadFile reads settings from a YAML file. If the file does not exist and required is false, it
// returns the defaults.
func LoadFile(path string, required bool) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()
	cfg, err := Load(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Environment looks up environment variables, preferring values from an env file over the
// process environment. The process environment is never modified.
type Environment struct {
	values map[string]string
	getenv func(string) string
}

// LoadEnvironment reads variables from a dotenv file. If the file does not exist and required is
// false, only the process environment is used.
func LoadEnvironment(path string, required bool) (*Environment, error) {
	env := &Environment{values: map[string]string{}, getenv: os.Getenv}
	if path == "" {
		return env, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return env, nil
		}
		return nil, fmt.Errorf("load env file %s: %w", path, err)
	}
	env.values = values
	return env, nil
}

// Getenv returns the value of name from the env file if it is defined there, or else from the
// process environment.
func (e *Environment) Getenv(name string) string {
	if v, ok := e.values[name]; ok {
		return v
	}
	return e.getenv(name)
}
