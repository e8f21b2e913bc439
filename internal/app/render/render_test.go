package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplacePlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		data     map[string]any
		expected string
	}{
		{
			name:     "substitutes_known_placeholders",
			content:  "Deed for {{client_name}} signed on {{date}}",
			data:     map[string]any{"client_name": "Ada", "date": "2026-01-02"},
			expected: "Deed for Ada signed on 2026-01-02",
		},
		{
			name:     "unknown_placeholder_left_verbatim",
			content:  "Deed for {{client_name}}",
			data:     map[string]any{"other": "x"},
			expected: "Deed for {{client_name}}",
		},
		{
			name:     "nil_data_returns_content",
			content:  "Deed for {{client_name}}",
			data:     nil,
			expected: "Deed for {{client_name}}",
		},
		{
			name:     "non_string_values_stringified",
			content:  "Parcel {{parcel}} of {{total}}",
			data:     map[string]any{"parcel": 3, "total": 7.5},
			expected: "Parcel 3 of 7.5",
		},
		{
			name:     "repeated_placeholder",
			content:  "{{name}} and {{name}}",
			data:     map[string]any{"name": "Ada"},
			expected: "Ada and Ada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplacePlaceholders(tt.content, tt.data))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "in_order_of_first_appearance",
			content:  "{{b}} then {{a}} then {{b}}",
			expected: []string{"b", "a"},
		},
		{
			name:     "no_placeholders",
			content:  "plain text",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Placeholders(tt.content))
		})
	}
}
