package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hp := HashPassword("corret horse battery staple")

	parsed, err := ParsePasswordString(hp.String())
	require.NoError(t, err)
	assert.Equal(t, hp, parsed)
}

func TestCheckPassword(t *testing.T) {
	hp := HashPassword("hunter2")

	ok, err := CheckPassword("hunter2", hp)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword("hunter3", hp)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnrecognizedAlgorithm(t *testing.T) {
	hp, err := ParsePasswordString("md5$config$salt$hash")
	require.NoError(t, err)

	_, err = CheckPassword("whatever", hp)
	assert.Error(t, err)
}

func TestArgon2idConfigRoundtrip(t *testing.T) {
	cfg := Argon2idConfig{Time: 1, Memory: 40 * 1024, Threads: 1, KeyLength: 64}

	parsed, err := ParseArgon2idConfig(cfg.String())
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)

	_, err = ParseArgon2idConfig("nonsense")
	assert.Error(t, err)
}
