package document

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var idCounter atomic.Uint64

// NewID returns a fresh entry id. The millisecond timestamp keeps ids roughly
// ordered, the process-wide counter separates ids minted in the same millisecond
// and the random suffix separates processes.
func NewID() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 36)
	seq := strconv.FormatUint(idCounter.Add(1), 36)
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return ms + "-" + seq + "-" + random
}
