package match

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeMatch runs the match command tree with the given stdin and args.
// Flag values are reset first so tests stay order-independent.
func executeMatch(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	findOffsetOnly = false
	expectAlphabet = 2

	var buf bytes.Buffer
	MatchCmd.SetOut(&buf)
	MatchCmd.SetErr(&buf)
	MatchCmd.SetIn(strings.NewReader(stdin))
	MatchCmd.SetArgs(args)
	err := MatchCmd.Execute()
	return buf.String(), err
}

func TestFindCommand(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr bool
		want    []string
	}{
		{
			name:  "Match on first line",
			stdin: "hello world",
			args:  []string{"find", "world"},
			want: []string{
				"target = world",
				"hello world",
				"      ^^^^^",
			},
		},
		{
			name:  "Match on later line reports line number",
			stdin: "first line\nhello world\nlast",
			args:  []string{"find", "world"},
			want: []string{
				"...line 2:",
				"hello world",
				"      ^^^^^",
			},
		},
		{
			name:  "No match",
			stdin: "nothing to see here",
			args:  []string{"find", "zebra"},
			want:  []string{"Not found in source"},
		},
		{
			name:  "Offset mode streams",
			stdin: "abcabd",
			args:  []string{"find", "abd", "--offset"},
			want:  []string{"Found at byte 3"},
		},
		{
			name:  "Offset mode not found",
			stdin: "aaaa",
			args:  []string{"find", "ab", "--offset"},
			want:  []string{"Not found in source"},
		},
		{
			name:    "Empty pattern rejected",
			stdin:   "anything",
			args:    []string{"find", ""},
			wantErr: true,
		},
		{
			name:    "Missing file",
			stdin:   "",
			args:    []string{"find", "x", "/no/such/file"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeMatch(t, tt.stdin, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestFindCommandUnderlineColumns(t *testing.T) {
	// The caret row must line up under the match even mid-line.
	output, err := executeMatch(t, "xxabcxx", "find", "abc")
	require.NoError(t, err)
	assert.Equal(t, "target = abc\nxxabcxx\n  ^^^\n", output)
}

func TestCountCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "Overlapping occurrences all counted",
			stdin: "aaaa",
			args:  []string{"count", "aa"},
			want:  "Target 'aa' found 3 times in source.",
		},
		{
			name:  "No occurrences",
			stdin: "bbbb",
			args:  []string{"count", "aa"},
			want:  "Target 'aa' found 0 times in source.",
		},
		{
			name:  "Occurrences across lines",
			stdin: "the cat sat\non the mat\n",
			args:  []string{"count", "at"},
			want:  "Target 'at' found 3 times in source.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeMatch(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestFailureCommand(t *testing.T) {
	output, err := executeMatch(t, "", "failure", "aabaaab")
	require.NoError(t, err)

	want := []string{
		"Failure function for aabaaab:",
		"f[1] = 0",
		"f[2] = 1",
		"f[3] = 0",
		"f[4] = 1",
		"f[5] = 2",
		"f[6] = 2",
		"f[7] = 3",
	}
	for _, line := range want {
		assert.Contains(t, output, line)
	}
}

func TestPeriodCommand(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{
			name: "Periodic string",
			arg:  "abcabcabc",
			want: `abcabcabc repeats "abc" 3 times.`,
		},
		{
			name: "Aperiodic string repeats itself once",
			arg:  "abcab",
			want: `abcab repeats "abcab" 1 times.`,
		},
		{
			name: "Single letter",
			arg:  "aaaa",
			want: `aaaa repeats "a" 4 times.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeMatch(t, "", "period", tt.arg)
			require.NoError(t, err)
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestExpectCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		want    string
	}{
		{
			name: "Self-overlapping pattern waits longer",
			args: []string{"expect", "11"},
			want: "expected draws until first appearance = 6.",
		},
		{
			name: "Non-overlapping pattern",
			args: []string{"expect", "10"},
			want: "expected draws until first appearance = 4.",
		},
		{
			name: "Larger alphabet",
			args: []string{"expect", "aa", "--alphabet", "26"},
			want: "expected draws until first appearance = 702.",
		},
		{
			name:    "Pattern too rich for alphabet",
			args:    []string{"expect", "abc", "--alphabet", "2"},
			wantErr: true,
		},
		{
			name:    "Alphabet of one rejected",
			args:    []string{"expect", "aa", "--alphabet", "1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeMatch(t, "", tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestExpectCommandConfigAlphabet(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("match.alphabet", 10)

	output, err := executeMatch(t, "", "expect", "99")
	require.NoError(t, err)
	assert.Contains(t, output, "over 10 symbols")
	assert.Contains(t, output, "expected draws until first appearance = 110.")
}
