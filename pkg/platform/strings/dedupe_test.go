package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "no values",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "empty value",
			input:    []string{""},
			expected: []string{},
		},
		{
			name:     "comma separated",
			input:    []string{"summary,ocr"},
			expected: []string{"summary", "ocr"},
		},
		{
			name:     "repeated values",
			input:    []string{"summary", "ocr"},
			expected: []string{"summary", "ocr"},
		},
		{
			name:     "trims and lowercases",
			input:    []string{" Summary , OCR "},
			expected: []string{"summary", "ocr"},
		},
		{
			name:     "drops duplicates keeping first position",
			input:    []string{"ocr,summary", "OCR", "decision"},
			expected: []string{"ocr", "summary", "decision"},
		},
		{
			name:     "drops blank parts",
			input:    []string{",, ,ocr,"},
			expected: []string{"ocr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input...))
		})
	}
}
