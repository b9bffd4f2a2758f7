package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "lowercases and stems",
			input:    "Floods destroyed the bridges",
			expected: []string{"flood", "destroy", "the", "bridg"},
		},
		{
			name:     "inflections share a stem",
			input:    "flooding floods flooded",
			expected: []string{"flood", "flood", "flood"},
		},
		{
			name:     "strips punctuation",
			input:    "Help! We need water, food & shelter.",
			expected: []string{"help", "we", "need", "water", "food", "shelter"},
		},
		{
			name:     "keeps digits",
			input:    "50 people stranded",
			expected: []string{"50", "peopl", "strand"},
		},
		{
			name:     "empty message",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}
