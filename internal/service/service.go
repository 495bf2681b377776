// Package service is the policy boundary in front of the random core.
//
// It re-validates primitive parameters against configured ceilings,
// throttles entropy consumption, converts panics to errors, and logs
// operation outcomes. Wire formats and transports are a concern of the
// callers, not of this package.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pijn/randcore/internal/config"
	"github.com/pijn/randcore/internal/random"
	"github.com/pijn/randcore/internal/ratelimit"
	"github.com/pijn/randcore/internal/stats"
)

// Operation names used for throttling, counters, and logs.
const (
	opGenerateString = "generate_random_string"
	opGenerateChoice = "generate_random_choice"
)

// ErrThrottled means the operation was rejected by the rate policy.
var ErrThrottled = errors.New("operation throttled")

// Service exposes the two generation operations with policy enforcement.
//
// A fresh entropy-seeded source is used for every operation, so no
// random state is shared across calls; the throttle and counters are the
// only shared state and carry their own locks.
type Service struct {
	cfg     *config.Config
	logger  *slog.Logger
	limiter *ratelimit.Limiter
	stats   *stats.Manager
}

// New creates a service applying cfg's policy ceilings and throttle
// settings.
func New(cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		cfg:     cfg,
		logger:  logger,
		limiter: ratelimit.NewLimiter(cfg.OpsPerSecond, cfg.Burst),
		stats:   stats.NewManager(),
	}
}

// GenerateRandomString produces a random string of the given length from
// the enabled character classes.
//
// Policy: length must be within 1..MaxLength and at least one class must
// be enabled. Violations fail with random.ErrConfiguration; nothing is
// defaulted or clamped silently, callers must know exactly what was
// generated. The generated string itself is never logged.
func (s *Service) GenerateRandomString(digits, lowercase, uppercase, special bool, length int) (out string, err error) {
	start := time.Now()
	defer s.finish(opGenerateString, start, &err)

	if err = s.allow(opGenerateString); err != nil {
		return "", err
	}
	if length < 1 || length > s.cfg.MaxLength {
		return "", fmt.Errorf("%w: length %d (must be 1-%d)", random.ErrConfiguration, length, s.cfg.MaxLength)
	}
	if !digits && !lowercase && !uppercase && !special {
		return "", fmt.Errorf("%w: at least one character class must be enabled", random.ErrConfiguration)
	}

	source, err := random.NewSource()
	if err != nil {
		return "", err
	}

	generator, err := random.NewStringGenerator(random.CharsetConfig{
		Digits:    digits,
		Lowercase: lowercase,
		Uppercase: uppercase,
		Special:   special,
		Length:    length,
	}, source)
	if err != nil {
		return "", err
	}

	return generator.Generate(), nil
}

// GenerateRandomChoice selects count items from items uniformly at
// random, without replacement.
//
// Policy: count must be within 1..MaxCount and must not exceed
// len(items). Violations fail with random.ErrInvalidCount. The input
// slice is not modified; the result is in draw order.
func (s *Service) GenerateRandomChoice(items []string, count int) (out []string, err error) {
	start := time.Now()
	defer s.finish(opGenerateChoice, start, &err)

	if err = s.allow(opGenerateChoice); err != nil {
		return nil, err
	}
	if count < 1 || count > s.cfg.MaxCount {
		return nil, fmt.Errorf("%w: count %d (must be 1-%d)", random.ErrInvalidCount, count, s.cfg.MaxCount)
	}

	source, err := random.NewSource()
	if err != nil {
		return nil, err
	}

	return random.Sample(source, items, count)
}

// Stats returns a snapshot of the operation counters.
func (s *Service) Stats() stats.Snapshot {
	return s.stats.Snapshot()
}

// allow applies the operation throttle.
func (s *Service) allow(op string) error {
	if !s.limiter.Allow(op) {
		return fmt.Errorf("%w: %s", ErrThrottled, op)
	}
	return nil
}

// finish records counters, logs the outcome, and converts a panic from
// the core into an error so callers never see one.
func (s *Service) finish(op string, start time.Time, err *error) {
	if p := recover(); p != nil {
		*err = fmt.Errorf("%s: panic: %v", op, p)
	}

	s.stats.Record(op, *err != nil)

	if *err != nil {
		s.logger.Warn("Operation failed", "op", op, "error", *err, "duration", time.Since(start))
		return
	}
	s.logger.Info("Operation completed", "op", op, "duration", time.Since(start))
}
