package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, SecurityStrict, cfg.SecurityLevel)
	assert.Equal(t, LookClassic, cfg.Look)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, 16, cfg.FontSize)
	assert.True(t, cfg.UseCase.UseMaxWidth)
	require.NoError(t, cfg.Validate())
}

func TestApplyMergesOverDefaults(t *testing.T) {
	cfg := Default()
	err := cfg.Apply([]byte("securityLevel: loose\nusecase:\n  padding: 20\n"))
	require.NoError(t, err)

	// Overridden keys change, everything else keeps its default.
	assert.Equal(t, SecurityLoose, cfg.SecurityLevel)
	assert.Equal(t, 20, cfg.UseCase.Padding)
	assert.Equal(t, LookClassic, cfg.Look)
	assert.Equal(t, 16, cfg.FontSize)
	assert.True(t, cfg.UseCase.UseMaxWidth)
}

func TestApplyRejectsMalformedYAML(t *testing.T) {
	cfg := Default()
	err := cfg.Apply([]byte("securityLevel: [unclosed"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.SecurityLevel = "paranoid"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "securityLevel")

	cfg = Default()
	cfg.Look = "sketchy"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "look")

	cfg = Default()
	cfg.FontSize = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.UseCase.Padding = -1
	require.Error(t, cfg.Validate())
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.SecurityLevel = SecurityLoose
	clone.UseCase.Padding = 99

	assert.Equal(t, SecurityStrict, cfg.SecurityLevel)
	assert.Equal(t, 8, cfg.UseCase.Padding)
}
