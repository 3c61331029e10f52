package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugPreview(t *testing.T) {
	type param struct {
		name   string
		input  []byte
		maxLen int
		want   string
	}

	tests := []param{
		{
			name:   "nil input",
			input:  nil,
			maxLen: 50,
			want:   `""`,
		},
		{
			name:   "short input is quoted whole",
			input:  []byte("hello world"),
			maxLen: 50,
			want:   `"hello world"`,
		},
		{
			name:   "input at the limit is quoted whole",
			input:  []byte("abcde"),
			maxLen: 5,
			want:   `"abcde"`,
		},
		{
			name:   "long input is truncated with the total size",
			input:  []byte("abcdefghij"),
			maxLen: 4,
			want:   `"abcd"... (10 bytes total)`,
		},
		{
			name:   "binary bytes are escaped",
			input:  []byte{0x0B, 0x00, 0xFF},
			maxLen: 50,
			want:   `"\v\x00\xff"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DebugPreview(tc.input, tc.maxLen))
		})
	}
}
