package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDialogue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "narration stripped",
			in:   `She smiled warmly. "Hello there!" A pause. "How are you today?"`,
			want: "Hello there! How are you today?",
		},
		{
			name: "no dialogue",
			in:   "He walked away without a word.",
			want: "",
		},
		{
			name: "pure dialogue",
			in:   `"All of this is spoken."`,
			want: "All of this is spoken.",
		},
		{
			name: "curly quotes",
			in:   "“Good morning.” The sun rose.",
			want: "Good morning.",
		},
		{
			name: "unclosed quote discarded",
			in:   `"Complete line." And then "trailing fragment`,
			want: "Complete line.",
		},
		{
			name: "empty quotes ignored",
			in:   `"" nothing here ""`,
			want: "",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDialogue(tt.in))
		})
	}
}
