package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline(t *testing.T) {
	got, err := ParseDeadline("31/12/2030 23:59")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 12, 31, 23, 59, 0, 0, time.UTC), got)
}

func TestParseDeadlineTrimsSpace(t *testing.T) {
	got, err := ParseDeadline("  01/01/2027 08:00 ")
	require.NoError(t, err)
	assert.Equal(t, 2027, got.Year())
}

func TestParseDeadlineRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"13/13/2025 99:99",
		"2030-12-31 23:59",
		"tomorrow",
		"",
	} {
		_, err := ParseDeadline(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatDeadlineRoundTrip(t *testing.T) {
	in := "05/06/2029 07:08"
	parsed, err := ParseDeadline(in)
	require.NoError(t, err)
	assert.Equal(t, in, FormatDeadline(parsed))
}
