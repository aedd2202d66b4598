// Package ticketcode generates the human-readable codes printed on tickets
// and draws: TKT-YYYYMMDD-XXXXXX and DRW-YYYYMMDD-XXXXXX.
package ticketcode

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"
)

const (
	ticketPrefix = "TKT"
	drawPrefix   = "DRW"

	charset    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixSize = 6
)

var (
	ticketPattern = regexp.MustCompile(`^TKT-\d{8}-[A-Z0-9]{6}$`)
	drawPattern   = regexp.MustCompile(`^DRW-\d{8}-[A-Z0-9]{6}$`)
)

// GenerateTicketCode returns a fresh participation code, e.g.
// TKT-20250124-A1B2C3.
func GenerateTicketCode(now time.Time) string {
	return generate(ticketPrefix, now)
}

// GenerateDrawCode returns a fresh draw code, e.g. DRW-20250124-A1B2C3.
func GenerateDrawCode(now time.Time) string {
	return generate(drawPrefix, now)
}

func IsValidTicketCode(code string) bool {
	return ticketPattern.MatchString(code)
}

func IsValidDrawCode(code string) bool {
	return drawPattern.MatchString(code)
}

func generate(prefix string, now time.Time) string {
	return fmt.Sprintf("%v-%v-%v", prefix, now.Format("20060102"), randomSuffix())
}

func randomSuffix() string {
	buf := make([]byte, suffixSize)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform's entropy source is broken;
		// nothing sensible to fall back to.
		panic(err)
	}

	for i := range buf {
		buf[i] = charset[int(buf[i])%len(charset)]
	}

	return string(buf)
}
