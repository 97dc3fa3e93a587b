// Package config loads allocfree settings from a YAML file and overlays the
// analyzer flags that were set explicitly on the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mpyw/allocfree/internal/capabilities"
	"github.com/mpyw/allocfree/internal/diagnostic"
	"github.com/mpyw/allocfree/internal/funcspec"
)

// Flag names shared with the analyzer.
const (
	FlagConfig          = "config"
	FlagIgnoreFiles     = "ignore-files"
	FlagAllocatingFuncs = "allocating-funcs"
	FlagLogLevel        = "log-level"
	FlagLogFormat       = "log-format"
)

var (
	ErrUnknownCapability = errors.New("unknown capability")
	ErrUnknownDescriptor = errors.New("unknown diagnostic id")
)

// Config is the file representation of the analyzer settings.
type Config struct {
	IgnoreFiles     []string                       `yaml:"ignore_files"`
	AllocatingFuncs []string                       `yaml:"allocating_funcs"`
	Disable         []string                       `yaml:"disable"`
	Severity        map[string]diagnostic.Severity `yaml:"severity"`
	LogLevel        string                         `yaml:"log_level"`
	LogFormat       string                         `yaml:"log_format"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads the YAML file at path on top of Default.
// An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads YAML from r on top of Default. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks capability names and descriptor IDs.
func (c Config) Validate() error {
	names := capabilities.Names()
	for _, name := range c.Disable {
		if !slices.Contains(names, name) {
			return fmt.Errorf("%w: %q", ErrUnknownCapability, name)
		}
	}

	for id := range c.Severity {
		if !slices.ContainsFunc(capabilities.Descriptors(), func(d diagnostic.Descriptor) bool { return d.ID == id }) {
			return fmt.Errorf("%w: %q", ErrUnknownDescriptor, id)
		}
	}

	return nil
}

// ApplyFlags overlays every flag of fs that was set explicitly.
// Capability switches are recognized by capability name.
func (c *Config) ApplyFlags(fs *flag.FlagSet) error {
	var errs []error

	fs.Visit(func(f *flag.Flag) {
		value := f.Value.String()

		switch f.Name {
		case FlagIgnoreFiles:
			c.IgnoreFiles = splitList(value)
		case FlagAllocatingFuncs:
			c.AllocatingFuncs = splitList(value)
		case FlagLogLevel:
			c.LogLevel = value
		case FlagLogFormat:
			c.LogFormat = value
		default:
			if !slices.Contains(capabilities.Names(), f.Name) {
				return
			}
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("flag -%s: %w", f.Name, err))
				return
			}
			c.setEnabled(f.Name, enabled)
		}
	})

	return errors.Join(errs...)
}

func (c *Config) setEnabled(name string, enabled bool) {
	c.Disable = slices.DeleteFunc(c.Disable, func(s string) bool { return s == name })
	if !enabled {
		c.Disable = append(c.Disable, name)
	}
}

// Settings converts the config into capability settings.
func (c Config) Settings() (capabilities.Settings, error) {
	enabled := make(map[string]bool, len(c.Disable))
	for _, name := range c.Disable {
		enabled[name] = false
	}

	specs := make([]funcspec.Spec, 0, len(c.AllocatingFuncs))
	for _, s := range c.AllocatingFuncs {
		spec, err := funcspec.Parse(s)
		if err != nil {
			return capabilities.Settings{}, fmt.Errorf("allocating func: %w", err)
		}
		specs = append(specs, spec)
	}

	return capabilities.Settings{
		Enabled:         enabled,
		AllocatingFuncs: specs,
		Severity:        c.Severity,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
