package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestJalaliDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1403/01/01", JalaliDate(time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1403/10/12", JalaliDate(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)))
	assert.Empty(t, JalaliDate(time.Time{}))
	assert.Empty(t, JalaliDatePtr(nil))
}

func TestJalaliDateTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1403/01/01 08:30:05", JalaliDateTime(time.Date(2024, 3, 20, 8, 30, 5, 0, time.UTC)))
	assert.Empty(t, JalaliDateTime(time.Time{}))
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}
