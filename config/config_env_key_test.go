package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"canteen": map[string]any{
			"opensAt":      "08:30",
			"discountRate": 0.10,
		},
		"storage": map[string]any{
			"provider": "file",
			"redis": map[string]any{
				"addr": "localhost:6379",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "CANTEEN_OPENSAT", want: "canteen.opensAt"},
		{envKey: "CANTEEN_DISCOUNTRATE", want: "canteen.discountRate"},
		{envKey: "STORAGE_PROVIDER", want: "storage.provider"},
		{envKey: "STORAGE_REDIS_ADDR", want: "storage.redis.addr"},
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
