// Package util holds small formatting helpers shared by the delivery layer and exports.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Persian calendar layouts shown to agents.
const (
	JalaliLayout         = "yyyy/MM/dd"
	JalaliDateTimeLayout = "yyyy/MM/dd HH:mm:ss"
)

// JalaliDate formats t on the Persian calendar as yyyy/MM/dd.
func JalaliDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return ptime.New(t).Format(JalaliLayout)
}

// JalaliDatePtr is JalaliDate for optional dates; nil yields "".
func JalaliDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}

	return JalaliDate(*t)
}

// JalaliDateTime formats t on the Persian calendar with its wall-clock time.
func JalaliDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return ptime.New(t).Format(JalaliDateTimeLayout)
}

// Checksum returns the hex SHA-256 digest of content.
func Checksum(content []byte) string {
	sum := sha256.Sum256(content)

	return hex.EncodeToString(sum[:])
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
