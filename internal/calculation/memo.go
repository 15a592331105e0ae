package calculation

import (
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// Memo caches whole results keyed by the value of the input state.
// It returns exactly what Compute would and is safe for concurrent use.
type Memo struct {
	mu      sync.RWMutex
	entries map[string]domain.CalculationResults
	limit   int
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewMemo creates a cache holding at most limit entries. A limit <= 0 means unbounded.
func NewMemo(limit int) *Memo {
	return &Memo{
		entries: make(map[string]domain.CalculationResults),
		limit:   limit,
	}
}

// Compute returns the cached results for state, computing them on a miss
func (m *Memo) Compute(state domain.CalculatorState) domain.CalculationResults {
	key, err := stateKey(state)
	if err != nil {
		// NaN and Inf cannot be encoded; such states bypass the cache.
		return Compute(state)
	}

	m.mu.RLock()
	r, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		m.hits.Add(1)
		return r
	}

	r = Compute(state)
	m.misses.Add(1)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.limit > 0 && len(m.entries) >= m.limit {
		m.entries = make(map[string]domain.CalculationResults)
	}
	m.entries[key] = r
	return r
}

// Stats reports cache hits and misses since creation
func (m *Memo) Stats() (hits, misses int) {
	return int(m.hits.Load()), int(m.misses.Load())
}

// Len returns the number of cached entries
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func stateKey(state domain.CalculatorState) (string, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
