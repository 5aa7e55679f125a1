package availability

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/womencards/womencards-backend/internal/profiles"
	"github.com/womencards/womencards-backend/pkg/logger"
	"github.com/womencards/womencards-backend/pkg/metrics"
)

// Status is the verdict for one username candidate.
type Status string

const (
	StatusAvailable Status = "available"
	StatusTaken     Status = "taken"
	StatusInvalid   Status = "invalid"
	// StatusUnknown means the store could not be consulted. Callers must not
	// block a save on it.
	StatusUnknown Status = "unknown"
)

// Result pairs a verdict with the normalized candidate it was computed for,
// so consumers can tell which keystroke a late answer belongs to.
type Result struct {
	Candidate string `json:"candidate"`
	Status    Status `json:"status"`
}

// Store answers who currently owns a username, nil when nobody does.
type Store interface {
	UsernameOwner(ctx context.Context, username string) (*uuid.UUID, error)
}

// Cache is an optional short-lived verdict cache shared across instances.
// A nil Cache disables caching.
type Cache interface {
	GetAvailability(ctx context.Context, candidate string) (Status, bool, error)
	SetAvailability(ctx context.Context, candidate string, status Status, ttl time.Duration) error
}

const (
	defaultDebounce = 500 * time.Millisecond
	defaultCacheTTL = 5 * time.Second
	lookupTimeout   = 5 * time.Second
)

// Options configures a Checker.
type Options struct {
	Store Store
	Cache Cache
	// SelfID excludes the caller's own row: keeping your current username
	// always reports available.
	SelfID   *uuid.UUID
	Debounce time.Duration
	CacheTTL time.Duration
	Logger   *logger.Logger
	Metrics  *metrics.Metrics
}

// Checker debounces per-keystroke username checks and delivers at most the
// latest verdict. Every Submit restarts the quiet period; a check whose
// generation has been superseded by a newer Submit is discarded, so the
// consumer never sees an answer for a candidate the caller already abandoned.
type Checker struct {
	store    Store
	cache    Cache
	selfID   *uuid.UUID
	debounce time.Duration
	cacheTTL time.Duration
	logg     *logger.Logger
	metrics  *metrics.Metrics

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	closed bool

	results chan Result
}

// NewChecker builds a Checker. Options.Store is required, everything else
// has a working default.
func NewChecker(opts Options) *Checker {
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &Checker{
		store:    opts.Store,
		cache:    opts.Cache,
		selfID:   opts.SelfID,
		debounce: opts.Debounce,
		cacheTTL: opts.CacheTTL,
		logg:     opts.Logger,
		metrics:  opts.Metrics,
		results:  make(chan Result, 1),
	}
}

// Results delivers verdicts. The channel holds only the newest result; an
// unread older verdict is replaced, never queued behind.
func (c *Checker) Results() <-chan Result {
	return c.results
}

// Submit records a keystroke. Every Submit restarts the quiet window and
// supersedes the previous candidate; only the candidate that survives the
// window produces a verdict. Candidates shorter than the minimum after
// normalization resolve to invalid without touching the store, but still only
// after the window, so a newer keystroke can never read a stale rejection.
func (c *Checker) Submit(candidate string) {
	normalized := profiles.NormalizeUsername(candidate)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.gen++
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	if len(normalized) < profiles.UsernameMinLength {
		invalid := Result{Candidate: normalized, Status: StatusInvalid}
		c.timer = time.AfterFunc(c.debounce, func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.closed || gen != c.gen {
				return
			}
			c.deliverLocked(invalid)
		})
		return
	}

	c.timer = time.AfterFunc(c.debounce, func() {
		c.runCheck(gen, normalized)
	})
}

// Close stops the pending timer. In-flight checks finish but their results
// are dropped.
func (c *Checker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Checker) runCheck(gen uint64, candidate string) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	result := c.CheckNow(ctx, candidate)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return
	}
	c.deliverLocked(result)
}

// deliverLocked replaces any unread result with the new one.
func (c *Checker) deliverLocked(r Result) {
	select {
	case <-c.results:
	default:
	}
	select {
	case c.results <- r:
	default:
	}
}

// CheckNow resolves a candidate synchronously, bypassing the debounce.
func (c *Checker) CheckNow(ctx context.Context, candidate string) Result {
	return c.CheckFor(ctx, candidate, c.selfID)
}

// CheckFor resolves a candidate with an explicit self-exclusion id. The
// verdict cache only serves anonymous lookups, a cached "taken" would be
// wrong for the handle's own holder. Store failures degrade to StatusUnknown
// rather than an error: the verdict is advisory and a save must not be held
// hostage to it.
func (c *Checker) CheckFor(ctx context.Context, candidate string, selfID *uuid.UUID) Result {
	normalized := profiles.NormalizeUsername(candidate)
	if len(normalized) < profiles.UsernameMinLength {
		return Result{Candidate: normalized, Status: StatusInvalid}
	}

	if c.cache != nil && selfID == nil {
		if status, ok, err := c.cache.GetAvailability(ctx, normalized); err == nil && ok {
			c.metrics.AvailabilityCheck(string(status), true)
			return Result{Candidate: normalized, Status: status}
		}
	}

	owner, err := c.store.UsernameOwner(ctx, normalized)
	if err != nil {
		if c.logg != nil {
			c.logg.Warn(c.logg.WithUsername(ctx, normalized), "availability lookup failed")
		}
		c.metrics.AvailabilityCheck(string(StatusUnknown), false)
		return Result{Candidate: normalized, Status: StatusUnknown}
	}

	status := StatusAvailable
	if owner != nil && (selfID == nil || *owner != *selfID) {
		status = StatusTaken
	}

	if c.cache != nil && selfID == nil {
		// unknown verdicts are never cached, available/taken briefly are
		_ = c.cache.SetAvailability(ctx, normalized, status, c.cacheTTL)
	}
	c.metrics.AvailabilityCheck(string(status), false)
	return Result{Candidate: normalized, Status: status}
}
