package services

import (
	"sync"
	"time"

	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
)

// VerseRotator cycles through the banner verses on a fixed interval. It
// free-runs for the lifetime of the server and is stopped on shutdown. The
// verse sequence is re-read from the source on every tick so admin edits take
// effect without a restart.
type VerseRotator struct {
	interval time.Duration
	source   func() []entities.Verse
	logger   *logger.Logger

	mu    sync.Mutex
	index int

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewVerseRotator creates a rotator over the given verse source.
func NewVerseRotator(interval time.Duration, source func() []entities.Verse, logger *logger.Logger) *VerseRotator {
	return &VerseRotator{
		interval: interval,
		source:   source,
		logger:   logger.WithComponent("verse_rotator"),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins rotation in the background.
func (v *VerseRotator) Start() {
	go func() {
		defer close(v.done)
		ticker := time.NewTicker(v.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				v.advance()
			case <-v.stop:
				return
			}
		}
	}()
}

// Stop tears the rotator down. Safe to call more than once.
func (v *VerseRotator) Stop() {
	v.stopOnce.Do(func() {
		close(v.stop)
		<-v.done
	})
}

// Current returns the verse on display. The second return is false when no
// verses are configured.
func (v *VerseRotator) Current() (entities.Verse, bool) {
	verses := v.source()
	if len(verses) == 0 {
		return entities.Verse{}, false
	}

	v.mu.Lock()
	index := v.index % len(verses)
	v.mu.Unlock()

	return verses[index], true
}

func (v *VerseRotator) advance() {
	verses := v.source()
	if len(verses) == 0 {
		return
	}

	v.mu.Lock()
	v.index = (v.index + 1) % len(verses)
	v.mu.Unlock()
}
