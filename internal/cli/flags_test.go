package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"LogLevel", flags.LogLevel, "info"},
		{"ExportFormat", flags.ExportFormat, "apkg"},
		{"WindowWidth", flags.WindowWidth, float32(420)},
		{"WindowHeight", flags.WindowHeight, float32(640)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"ImportFile", flags.ImportFile},
		{"ImportName", flags.ImportName},
		{"ExportPath", flags.ExportPath},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestHeadless(t *testing.T) {
	tests := []struct {
		name   string
		flags  Flags
		expect bool
	}{
		{"nothing set", Flags{}, false},
		{"import only", Flags{ImportFile: "a.txt"}, false},
		{"export only", Flags{ExportPath: "out.apkg"}, false},
		{"import and export", Flags{ImportFile: "a.txt", ExportPath: "out.apkg"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.Headless(); got != tt.expect {
				t.Errorf("Headless() = %v, want %v", got, tt.expect)
			}
		})
	}
}
