package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_FillsEverySection(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg.Storage)
	require.NotNil(t, cfg.Currency)
	require.NotNil(t, cfg.Catalog)
	require.NotNil(t, cfg.Checkout)

	assert.Equal(t, StorageDriverBlob, cfg.Storage.Driver)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, "EUR", cfg.Currency.Base)
	assert.Equal(t, "EUR", cfg.Currency.Default)
	assert.InDelta(t, 1.09, cfg.Currency.FallbackRates["USD"], 1e-9)
	assert.Equal(t, []string{"EUR", "USD", "GBP", "JPY", "CNY"}, cfg.Currency.Supported)
	assert.Equal(t, DefaultCategories(), cfg.Catalog.Categories)
	assert.InDelta(t, 150.0, cfg.Checkout.FreeShippingThreshold, 1e-9)
	assert.InDelta(t, 10.0, cfg.Checkout.FlatShippingFee, 1e-9)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage:  &StorageConfig{Driver: StorageDriverPostgres, KeyPrefix: "shop-a/"},
		Currency: &CurrencyConfig{Base: "USD", FallbackRates: map[string]float64{"USD": 1, "EUR": 0.92}},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "shop-a/", cfg.Storage.KeyPrefix)
	assert.Equal(t, "USD", cfg.Currency.Default)
	assert.Len(t, cfg.Currency.FallbackRates, 2)
}

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  serviceName: storefront
  log:
    level: info
currency:
  base: EUR
  fetchTimeout: 3s
  rateSourceUrl: http://rates.local/
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("CURRENCY_RATESOURCEURL", "http://override.local/")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Currency)
	assert.Equal(t, 3*time.Second, cfg.Currency.FetchTimeout)
	assert.Equal(t, "http://override.local/", cfg.Currency.RateSourceURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}
