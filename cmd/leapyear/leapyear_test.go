package leapyear

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeLeapyear(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	LeapyearCmd.SetOut(buf)
	LeapyearCmd.SetErr(buf)
	LeapyearCmd.SetArgs(args)
	err := LeapyearCmd.Execute()
	return buf.String(), err
}

func TestLeapyearCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "leap year",
			args: []string{"2000"},
			want: "2000 is a leap year.\n",
		},
		{
			name: "gregorian century is not leap",
			args: []string{"1900"},
			want: "1900 is not a leap year.\n",
		},
		{
			name: "julian century is leap",
			args: []string{"1500"},
			want: "1500 is a leap year.\n",
		},
		{
			name: "several years keep order",
			args: []string{"1996", "1997"},
			want: "1996 is a leap year.\n1997 is not a leap year.\n",
		},
		{
			name: "year zero reported inline",
			args: []string{"0", "2024"},
			want: "There is no year 0.\n2024 is a leap year.\n",
		},
		{
			name: "bc year after dashes",
			args: []string{"--", "-45"},
			want: "-45 is a leap year.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeLeapyear(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLeapyearCommandBadYear(t *testing.T) {
	_, err := executeLeapyear(t, "MMXX")
	assert.Error(t, err)
}
