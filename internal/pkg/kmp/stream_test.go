package kmp

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindReader(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    int64
	}{
		{
			name:    "match mid stream",
			text:    "hello world",
			pattern: "world",
			want:    6,
		},
		{
			name:    "match at start",
			text:    "hello world",
			pattern: "he",
			want:    0,
		},
		{
			name:    "no occurrence",
			text:    "hello world",
			pattern: "mars",
			want:    NotFound,
		},
		{
			name:    "match beyond one chunk",
			text:    strings.Repeat("x", streamBufSize+100) + "needle",
			pattern: "needle",
			want:    int64(streamBufSize + 100),
		},
		{
			name:    "match straddling the chunk boundary",
			text:    strings.Repeat("x", streamBufSize-3) + "needle",
			pattern: "needle",
			want:    int64(streamBufSize - 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewStringMatcher(tt.pattern)
			require.NoError(t, err)

			got, err := FindReader(m, strings.NewReader(tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// One-byte reads force the match state to carry across every read call.
func TestFindReader_TinyReads(t *testing.T) {
	m, err := NewStringMatcher("aabaaa")
	require.NoError(t, err)

	r := iotest.OneByteReader(strings.NewReader("aabaabaaa"))
	got, err := FindReader(m, r)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestCountReader(t *testing.T) {
	m, err := NewStringMatcher("aa")
	require.NoError(t, err)

	got, err := CountReader(m, strings.NewReader("aaaa"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got, "overlapping occurrences count")

	got, err = CountReader(m, iotest.OneByteReader(strings.NewReader("aaaa")))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestFindReader_PropagatesError(t *testing.T) {
	m, err := NewStringMatcher("needle")
	require.NoError(t, err)

	r := iotest.TimeoutReader(strings.NewReader(strings.Repeat("x", 100)))
	_, err = FindReader(m, r)
	assert.Error(t, err)
}
