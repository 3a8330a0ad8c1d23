package wordsearch

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/vovakirdan/tui-wordsearch/internal/puzzle"
)

// DefaultDailySalt keys the daily seed. Servers can set their own so their
// daily puzzle differs from everyone else's.
const DefaultDailySalt = "tui-wordsearch-daily"

// The daily grid ignores local configuration and settings so every server
// builds the same puzzle for a date.
const (
	dailySize  = 12
	dailyWords = 10
)

func dailyGeneratorOptions() puzzle.GeneratorOptions {
	opts := puzzle.DefaultGeneratorOptions()
	opts.LongestFirst = true
	opts.ExhaustiveFallback = true
	return opts
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailySeed derives the RNG seed of a day's puzzle from HMAC(salt, YYYY-MM-DD).
func DailySeed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]) >> 1)
}
