package server

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lewtec/comparador/internal/compare"
)

// Config holds everything the service needs at startup. There is no
// process-wide mutable state: the loaded struct is handed to the App and
// the comparison engine itself touches none of it.
type Config struct {
	// Addr is the address the HTTP server binds to.
	Addr string `yaml:"addr"`
	// DatabasePath is the SQLite file holding the image store.
	DatabasePath string `yaml:"database"`
	// DefaultMethod is used when a compare request omits
	// comparison_method. Must be one of the four method tokens.
	DefaultMethod string `yaml:"default_method"`
	// AllowedExtensions is the upload allow-list, without dots.
	AllowedExtensions []string `yaml:"allowed_extensions"`
	// MaxUploadBytes bounds the size of a single upload.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	return &Config{
		Addr:              ":8080",
		DatabasePath:      "comparador.db",
		DefaultMethod:     string(compare.DefaultMethod),
		AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "bmp", "tiff"},
		MaxUploadBytes:    32 << 20,
	}
}

// LoadConfig reads a yaml configuration file on top of the defaults and
// validates it.
func LoadConfig(filename string) (*Config, error) {
	ret := DefaultConfig()
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Validate checks the configuration for values the service cannot start
// with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database must not be empty")
	}
	if _, err := compare.ParseMethod(c.DefaultMethod); err != nil {
		return fmt.Errorf("default_method: %w", err)
	}
	if len(c.AllowedExtensions) == 0 {
		return fmt.Errorf("allowed_extensions must not be empty")
	}
	for i, ext := range c.AllowedExtensions {
		c.AllowedExtensions[i] = strings.ToLower(strings.TrimPrefix(ext, "."))
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}
	return nil
}

// ExtensionAllowed reports whether a filename carries one of the allowed
// image extensions. This is upload validation only; whether the bytes
// actually decode is decided by the engine.
func (c *Config) ExtensionAllowed(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	for _, allowed := range c.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
