package cmd

import "testing"

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(devel)", "(devel)"},
		{"v1.4.0", "v1.4.0"},
		{"1.4.0", "v1.4.0"},
		{"v1.4", "v1.4.0"},
		{"v2.0.0+dirty", "v2.0.0"},
		{"v1.0.0-rc.1", "v1.0.0-rc.1"},
		{"main-abc123", "main-abc123"},
	}
	for _, tt := range tests {
		if got := displayVersion(tt.in); got != tt.want {
			t.Errorf("displayVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
