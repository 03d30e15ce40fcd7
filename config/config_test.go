package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "işlem başarısız"
	testErr := errors.New("internal database error")

	// nil err returns the fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release mode hides the detail
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug mode returns err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// nil GlobalConfig is treated as development
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfigDefaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 168, cfg.JWT.ExpireHours)
	assert.Positive(t, cfg.JWT.ExpireTime)
	assert.Equal(t, float64(30), cfg.Distribution.DefaultDebtPercentage)
	assert.Equal(t, float64(20), cfg.Distribution.DefaultSavingsPercentage)
	assert.Equal(t, "snowball", cfg.Distribution.DefaultStrategy)
	assert.Equal(t, "https://exp.host/--/api/v2/push/send", cfg.Push.URL)
}
