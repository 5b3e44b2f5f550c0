package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "RENTI_DEBUG", "REDIS_ADDR", "ASSISTANT_DELAY", "AFRICAS_TALKING_USERNAME", "AFRICAS_TALKING_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 600*time.Millisecond, cfg.AssistantDelay)
	assert.Equal(t, time.Minute, cfg.GreetingInterval)
	assert.False(t, cfg.AfricasTalking.Configured())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "PORT=9090\nASSISTANT_DELAY=0s\nAFRICAS_TALKING_USERNAME=sandbox\nAFRICAS_TALKING_API_KEY=key\nAFRICAS_TALKING_SHORTCODE=RENTI\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	for _, key := range []string{"PORT", "ASSISTANT_DELAY", "AFRICAS_TALKING_USERNAME", "AFRICAS_TALKING_API_KEY", "AFRICAS_TALKING_SHORTCODE", "AFRICAS_TALKING_SMS_SHORTCODE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.AssistantDelay)
	assert.True(t, cfg.AfricasTalking.Configured())
	assert.Equal(t, "RENTI", cfg.AfricasTalking.Shortcode)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "70000")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestGetEnvAsInt_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("RENTI_TEST_INT", "abc")
	assert.Equal(t, 7, getEnvAsInt("RENTI_TEST_INT", 7))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
