package deck

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// IDSource mints ids for slides and elements. Uniqueness within the document
// is the only contract; the textual format is opaque to the rest of the core.
type IDSource interface {
	NewID(kind string) string
}

// Clock supplies the timestamps stamped onto mutated documents. Injected so
// reducer behavior stays deterministic under test.
type Clock func() time.Time

// UUIDSource is the production IDSource backed by random UUIDs.
type UUIDSource struct{}

func (UUIDSource) NewID(kind string) string {
	return kind + "-" + uuid.NewString()
}

// SequenceSource mints predictable ids ("slide-1", "element-2", ...) and is
// intended for tests.
type SequenceSource struct {
	n atomic.Int64
}

func (s *SequenceSource) NewID(kind string) string {
	return fmt.Sprintf("%s-%d", kind, s.n.Add(1))
}
