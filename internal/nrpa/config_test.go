package nrpa

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrpa-go/nrpa/internal/parameters"
)

func TestParseConfigAppliesOverridesOverDefaults(t *testing.T) {
	params := parameters.NewFromConfigString("num_run=3,num_level=2,timeout=5,tag=run1")
	cfg, err := ParseConfig(params)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.NumRun)
	assert.Equal(t, 2, cfg.NumLevel)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "run1", cfg.Tag)
	assert.Equal(t, DefaultConfig().NumIter, cfg.NumIter)
}

func TestParseConfigRejectsUnknownKey(t *testing.T) {
	params := parameters.NewFromConfigString("bogus_key=1")
	_, err := ParseConfig(params)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestValidateRejectsOutOfRangeLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumLevel = MaxLevel
	require.Error(t, cfg.Validate())
}
