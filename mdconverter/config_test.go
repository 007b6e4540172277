package mdconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Config{}.Validate())
	require.NoError(t, Config{LanguageMap: map[string]string{"golang": "go"}}.Validate())

	err := Config{LanguageMap: map[string]string{" ": "go"}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "languageMap")

	err = Config{LanguageMap: map[string]string{"golang": ""}}.Validate()
	require.Error(t, err)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{LanguageMap: map[string]string{"": "go"}})
	require.Error(t, err)
}

func TestConfigCloneIsolatesMaps(t *testing.T) {
	original := Config{LanguageMap: map[string]string{"golang": "go"}}
	cloned := original.clone()

	cloned.LanguageMap["golang"] = "changed"
	assert.Equal(t, "go", original.LanguageMap["golang"])
}
