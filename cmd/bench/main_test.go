package main

import "testing"

func TestParseConfigs(t *testing.T) {
	configs, err := parseConfigs("3x3x3, 4x4x4")
	if err != nil {
		t.Fatalf("parseConfigs: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("parsed %d configs, want 2", len(configs))
	}
	if configs[1] != (benchConfig{width: 4, height: 4, winLength: 4}) {
		t.Fatalf("second config = %+v", configs[1])
	}
}

func TestParseConfigsRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "3x3", "3x3x0", "axbxc"} {
		if _, err := parseConfigs(raw); err == nil {
			t.Fatalf("parseConfigs(%q) accepted invalid input", raw)
		}
	}
}
