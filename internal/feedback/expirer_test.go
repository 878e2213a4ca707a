package feedback_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/duelometabolico/internal/feedback"
)

type recorder struct {
	mu   sync.Mutex
	seqs []uint64
}

func (r *recorder) clear(seq uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seqs = append(r.seqs, seq)
}

func (r *recorder) cleared() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint64(nil), r.seqs...)
}

func TestExpirer_ClearsAfterTTL(t *testing.T) {
	rec := &recorder{}
	exp := feedback.NewExpirer(10*time.Millisecond, rec.clear)

	exp.Schedule(1)

	assert.Eventually(t, func() bool { return len(rec.cleared()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []uint64{1}, rec.cleared())
}

func TestExpirer_RescheduleCancelsPrevious(t *testing.T) {
	rec := &recorder{}
	exp := feedback.NewExpirer(30*time.Millisecond, rec.clear)

	exp.Schedule(1)
	exp.Schedule(2)

	assert.Eventually(t, func() bool { return len(rec.cleared()) > 0 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []uint64{2}, rec.cleared())
}

func TestExpirer_StopCancelsPending(t *testing.T) {
	rec := &recorder{}
	exp := feedback.NewExpirer(20*time.Millisecond, rec.clear)

	exp.Schedule(1)
	exp.Stop()
	exp.Schedule(2)

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.cleared())
}

func TestExpirer_DefaultTTL(t *testing.T) {
	exp := feedback.NewExpirer(0, func(uint64) {})
	assert.Equal(t, feedback.DefaultTTL, exp.TTL())
}
