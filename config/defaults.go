package config

const (
	defaultBaseCurrency          = "EUR"
	defaultBucketURL             = "mem://"
	defaultKeyPrefix             = "storefront/"
	defaultRateSourceURL         = "https://api.exchangerate-api.com/v4/latest/"
	defaultQueryCacheSize        = 128
	defaultFreeShippingThreshold = 150
	defaultFlatShippingFee       = 10
)

// DefaultFallbackRates are the rates relative to one EUR used until a live table arrives.
func DefaultFallbackRates() map[string]float64 {
	return map[string]float64{
		"EUR": 1,
		"USD": 1.09,
		"GBP": 0.85,
		"JPY": 163.0,
		"CNY": 7.8,
	}
}

// DefaultCategories is the category enum of the bundled catalog seed.
func DefaultCategories() []string {
	return []string{"Miniskirts", "Tops", "Sets", "Accessories", "Shoes"}
}

// ApplyDefaults fills every optional section that the YAML file left out.
func ApplyDefaults(cfg *Config) {
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverBlob
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = defaultBucketURL
	}
	if cfg.Storage.KeyPrefix == "" {
		cfg.Storage.KeyPrefix = defaultKeyPrefix
	}

	if cfg.Currency == nil {
		cfg.Currency = &CurrencyConfig{}
	}
	if cfg.Currency.Base == "" {
		cfg.Currency.Base = defaultBaseCurrency
	}
	if cfg.Currency.Default == "" {
		cfg.Currency.Default = cfg.Currency.Base
	}
	if len(cfg.Currency.FallbackRates) == 0 {
		cfg.Currency.FallbackRates = DefaultFallbackRates()
	}
	if len(cfg.Currency.Supported) == 0 {
		cfg.Currency.Supported = []string{"EUR", "USD", "GBP", "JPY", "CNY"}
	}
	if cfg.Currency.RateSourceURL == "" {
		cfg.Currency.RateSourceURL = defaultRateSourceURL
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{QueryCacheSize: defaultQueryCacheSize}
	}
	if len(cfg.Catalog.Categories) == 0 {
		cfg.Catalog.Categories = DefaultCategories()
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{
			FreeShippingThreshold: defaultFreeShippingThreshold,
			FlatShippingFee:       defaultFlatShippingFee,
		}
	}
}

// Default returns a fully defaulted configuration that needs no file. Tests and
// tools use it as a starting point.
func Default() *Config {
	cfg := &Config{}
	cfg.Env.Env = "local"
	cfg.Env.ServiceName = "storefront"
	cfg.Env.Log = Log{Level: "info", Pretty: true}
	cfg.HTTP.Port = 8080
	cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	ApplyDefaults(cfg)

	return cfg
}
