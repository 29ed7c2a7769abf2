package secrets

import "testing"

func TestIsSecret(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		want bool
	}{
		{"API_KEY", true},
		{"DATABASE_PASSWORD", true},
		{"refresh_token", true},
		{"STRIPE_SECRET_KEY", true},
		{"GITHUB_AUTH", true},
		{"DATABASE_DSN", true},
		{"PORT", false},
		{"LOG_LEVEL", false},
		{"HOSTNAME", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsSecret(tt.name); got != tt.want {
				t.Errorf("IsSecret(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDetectorExtraFragments(t *testing.T) {
	d := NewDetector("license")
	if !d.IsSecret("APP_LICENSE_CODE") {
		t.Error("extra fragment not matched")
	}
	if !d.IsSecret("API_KEY") {
		t.Error("defaults lost when extras are added")
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"sk_live_abc123def456", "sk_l***"},
		{"short", "***"},
		{"", "***"},
		{"12345678", "***"},
	}

	for _, tt := range tests {
		if got := MaskValue(tt.value); got != tt.want {
			t.Errorf("MaskValue(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestMaskLeavesPlainValues(t *testing.T) {
	d := NewDetector()
	if got := d.Mask("PORT", "8080"); got != "8080" {
		t.Errorf("plain value changed: %q", got)
	}
	if got := d.Mask("API_KEY", "sk_live_abc123def456"); got != "sk_l***" {
		t.Errorf("secret not masked: %q", got)
	}
}
