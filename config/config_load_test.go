package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	HTTP struct {
		Port     int `yaml:"port"`
		Timeouts struct {
			ReadTimeout time.Duration `yaml:"readTimeout"`
		} `yaml:"timeouts"`
	} `yaml:"http"`
	SecretKey struct {
		Access string `yaml:"access"`
	} `yaml:"secretKey"`
	Image *ImageConfig `yaml:"image"`
}

const testYAML = `
http:
  port: 8080
  timeouts:
    readTimeout: 15s
secretKey:
  access: from-file
image:
  uploadDirectory: ./images
  maxUploadSize: 5MB
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("IMAGE_UPLOADDIRECTORY", "/var/lib/adboard")

	cfg, err := LoadWithEnv[testConfig]("test")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Image)
	assert.Equal(t, "/var/lib/adboard", cfg.Image.UploadDirectory)
	assert.Equal(t, "5MB", cfg.Image.MaxUploadSize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[testConfig]("absent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}
