package query

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects delivered values behind a mutex so the AfterFunc
// goroutine and the test can both touch it.
type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) deliver(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, text)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerDeliversLastValueOnly(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.deliver)
	defer d.Stop()

	d.Type("l")
	d.Type("lu")
	d.Type("lucia")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) > 0
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"lucia"}, rec.snapshot())
}

func TestDebouncerDropsRepeatedValue(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(5*time.Millisecond, rec.deliver)
	defer d.Stop()

	d.Type("lucia")
	d.Flush()
	d.Type("lucia")
	d.Flush()
	d.Type("marco")
	d.Flush()

	assert.Equal(t, []string{"lucia", "marco"}, rec.snapshot())
}

func TestDebouncerStopDiscardsPending(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(10*time.Millisecond, rec.deliver)

	d.Type("lucia")
	d.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncerFlushWithoutTypingIsNoop(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(10*time.Millisecond, rec.deliver)

	d.Flush()
	assert.Empty(t, rec.snapshot())
}
