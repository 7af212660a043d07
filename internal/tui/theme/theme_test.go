package theme

import "testing"

func TestLoad(t *testing.T) {
	for _, name := range []string{"dark", "light", "DARK"} {
		th, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", name, err)
		}
		for field, v := range map[string]string{
			"bg": th.Bg, "fg": th.Fg, "accent": th.Accent,
			"high": th.High, "medium": th.Medium, "low": th.Low,
			"commitment": th.Commitment, "warning": th.Warning,
		} {
			if v == "" {
				t.Errorf("%s: %s is empty", name, field)
			}
		}
	}
}

func TestLoad_Names(t *testing.T) {
	dark, err := Load("dark")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if dark.Name != "dark" {
		t.Errorf("Name = %q, want dark", dark.Name)
	}
	light, err := Load("light")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if light.Name != "light" {
		t.Errorf("Name = %q, want light", light.Name)
	}
}

func TestResolve(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	tests := []struct {
		name   string
		detect func() bool
		want   string
	}{
		{"dark", light, "dark"},
		{"light", dark, "light"},
		{" Light ", dark, "light"},
		{"system", dark, "dark"},
		{"system", light, "light"},
		{"", light, "light"},
		{"mocha", dark, "dark"},
		{"system", nil, "dark"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.name, tt.detect); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsAvailable(t *testing.T) {
	for _, name := range []string{"system", "dark", "Light"} {
		if !IsAvailable(name) {
			t.Errorf("IsAvailable(%q) = false", name)
		}
	}
	if IsAvailable("mocha") {
		t.Error("IsAvailable(mocha) = true")
	}
}
