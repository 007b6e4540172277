package mdconverter

import (
	"fmt"
	"strings"
)

// Config configures markdown to block conversion behavior.
type Config struct {
	// LanguageMap rewrites fence language tags before they are stored on
	// code blocks, e.g. {"golang": "go"}.
	LanguageMap map[string]string `json:"languageMap,omitempty"`
}

func (c Config) clone() Config {
	cloned := c
	cloned.LanguageMap = cloneStringMap(c.LanguageMap)
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	for from, to := range c.LanguageMap {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("languageMap keys and values must be non-empty")
		}
	}

	return nil
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}

	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}
