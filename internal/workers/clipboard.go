package workers

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// sweepInterval is how often the sweeper checks whether the clear deadline
// has passed.
const sweepInterval = time.Second

// ClipboardSweeper copies passwords to the system clipboard and clears them
// again after a fixed TTL, so a copied secret does not linger for the rest
// of the session.
//
// ClipboardSweeper implements [Worker]; Run starts the background sweep
// loop. A TTL of zero disables sweeping entirely: Copy still writes to the
// clipboard, it is just never cleared.
type ClipboardSweeper struct {
	ttl   time.Duration
	log   *logger.Logger
	write func(string) error

	mu       sync.Mutex
	armed    bool
	deadline time.Time

	done     chan struct{}
	stopOnce sync.Once
}

func NewClipboardSweeper(ttl time.Duration, log *logger.Logger) *ClipboardSweeper {
	return &ClipboardSweeper{
		ttl:   ttl,
		log:   log,
		write: clipboard.WriteAll,
		done:  make(chan struct{}),
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately. No-op when the TTL is zero.
func (s *ClipboardSweeper) Run() {
	if s.ttl <= 0 {
		s.log.Debug().Msg("clipboard sweeper disabled")
		return
	}

	go s.loop()
}

func (s *ClipboardSweeper) loop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

// Copy puts text on the clipboard and arms the sweeper: the clipboard will
// be cleared once the TTL elapses. A later Copy pushes the deadline out
// again.
func (s *ClipboardSweeper) Copy(text string) error {
	if err := s.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	if s.ttl > 0 {
		s.mu.Lock()
		s.armed = true
		s.deadline = time.Now().Add(s.ttl)
		s.mu.Unlock()
	}

	return nil
}

// sweep clears the clipboard if the deadline has passed. Split out from the
// ticker loop so tests can drive it with their own clock.
func (s *ClipboardSweeper) sweep(now time.Time) {
	s.mu.Lock()
	due := s.armed && !now.Before(s.deadline)
	if due {
		s.armed = false
	}
	s.mu.Unlock()

	if !due {
		return
	}

	if err := s.write(""); err != nil {
		// The secret stays on the clipboard; re-arm so the next tick
		// retries.
		s.log.Warn().Err(err).Msg("failed to clear clipboard")
		s.mu.Lock()
		s.armed = true
		s.mu.Unlock()
		return
	}

	s.log.Debug().Msg("clipboard cleared")
}

// Stop terminates the sweep loop. Safe to call more than once.
func (s *ClipboardSweeper) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}
