package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("REGISTRY_TEST_VAR", "set")
	if got := GetEnv("REGISTRY_TEST_VAR", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, want set value", got)
	}
	if got := GetEnv("REGISTRY_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want fallback", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"on", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"off", true, false},
		{"", true, true},
		{"", false, false},
		{"garbage", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("REGISTRY_TEST_BOOL", tt.value)
			if got := GetEnvBool("REGISTRY_TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.value, tt.def, got, tt.want)
			}
		})
	}
}
