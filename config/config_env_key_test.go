package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"bucketUrl": "mem://",
			"keyPrefix": "storefront/",
		},
		"currency": map[string]any{
			"rateSourceUrl":  "",
			"refreshOnStart": true,
		},
		"checkout": map[string]any{
			"flatShippingFee": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_KEY_PREFIX", want: "storage.key.prefix"},
		{envKey: "CURRENCY_REFRESHONSTART", want: "currency.refreshOnStart"},
		{envKey: "CHECKOUT_FLATSHIPPINGFEE", want: "checkout.flatShippingFee"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
