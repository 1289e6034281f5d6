package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a process-unique internal id: a high-resolution timestamp in
// decimal digits, bumped when two calls land on the same clock tick.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixNano()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}

// SequenceID returns a display id of the form `{prefix}-{size+1}` with the
// sequence zero-padded to three digits, e.g. ORD-001 for an empty collection.
// The sequence is derived from the current collection size, so deleting
// records and creating new ones can reissue a value.
func SequenceID(prefix string, collectionSize int) string {
	return fmt.Sprintf("%s-%03d", prefix, collectionSize+1)
}

// TimestampID returns a display id built from the last eight digits of the
// current unix-millisecond clock, e.g. FARM-45678901.
func TimestampID(prefix string) string {
	return prefix + "-" + lastDigits(8)
}

// ReferenceNumber returns an externally-exposed handle of the form
// `{prefix}-{8 timestamp digits}-{4 random uppercase alphanumerics}`. The
// random suffix keeps references hard to guess.
func ReferenceNumber(prefix string) string {
	return prefix + "-" + lastDigits(8) + "-" + randomSuffix(4)
}

// VerificationToken returns an opaque random token for account verification.
func VerificationToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func lastDigits(n int) string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ms) > n {
		ms = ms[len(ms)-n:]
	}
	return ms
}

func randomSuffix(n int) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(id[:n])
}
