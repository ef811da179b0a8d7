package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/hellobundle/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultStatePath",
			got:      domain.DefaultStatePath(),
			expected: ".hellobundle",
		},
		{
			name:     "DefaultStorePath",
			got:      domain.DefaultStorePath(),
			expected: filepath.Join(".hellobundle", "store"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
