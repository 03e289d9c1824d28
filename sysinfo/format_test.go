package sysinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{16 * 1024 * 1024 * 1024, "16.0 GB"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatBytes(tc.in), "FormatBytes(%d)", tc.in)
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Hello...", TruncateString("Hello World", 8))
	assert.Equal(t, "Hi", TruncateString("Hi", 5))
	assert.Equal(t, "/méd...", TruncateString("/média/externe", 7))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 mins"},
		{time.Minute, "1 min"},
		{3*time.Hour + 4*time.Minute + 12*time.Second, "3 hours, 4 mins"},
		{53*time.Hour + 30*time.Minute, "2 days, 5 hours, 30 mins"},
		{24 * time.Hour, "1 day"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatUptime(tc.in), "FormatUptime(%s)", tc.in)
	}
}
