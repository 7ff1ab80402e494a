package reels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 { return &v }

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   *int64
		want string
	}{
		{nil, "0"},
		{ptr(0), "0"},
		{ptr(999), "999"},
		{ptr(1_000), "1.0K"},
		{ptr(1_260), "1.3K"},
		{ptr(45_600), "45.6K"},
		{ptr(1_000_000), "1.0M"},
		{ptr(12_340_000), "12.3M"},
		{ptr(1_234_567_890), "1234.6M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.in))
	}
}

func TestFormatPosted(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	sameYear := time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, "", FormatPosted(nil, now))
	assert.Equal(t, "Mar 4", FormatPosted(&sameYear, now))
	assert.Equal(t, "Dec 31, 2025", FormatPosted(&lastYear, now))
}
