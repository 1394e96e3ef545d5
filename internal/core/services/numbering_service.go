package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
)

// NumberExistsFunc reports whether a document number is already taken
// for one prefix's document family.
type NumberExistsFunc func(ctx context.Context, number string) (bool, error)

// numberingService produces document numbers of the form
// PREFIX-YYYYMMDD-NNNN. A sequence counter is held per prefix and day;
// collisions with numbers already persisted (e.g. after a restart) are
// skipped by probing the registered existence checker.
type numberingService struct {
	mu       sync.Mutex
	checkers map[string]NumberExistsFunc
	lastSeq  map[string]int // key: prefix + date
}

// NewNumberingService creates a numbering service with the given
// per-prefix existence checkers.
func NewNumberingService(checkers map[string]NumberExistsFunc) portssvc.NumberingSvcFacade {
	return &numberingService{
		checkers: checkers,
		lastSeq:  make(map[string]int),
	}
}

var _ portssvc.NumberingSvcFacade = (*numberingService)(nil)

const maxNumberProbes = 10000

// NextNumber returns the next free document number for the prefix.
func (s *numberingService) NextNumber(ctx context.Context, prefix string) (string, error) {
	checker, ok := s.checkers[prefix]
	if !ok {
		return "", fmt.Errorf("%w: no number sequence registered for prefix %q", apperrors.ErrInternal, prefix)
	}

	date := time.Now().UTC().Format("20060102")
	key := prefix + date

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.lastSeq[key]
	for i := 0; i < maxNumberProbes; i++ {
		seq++
		candidate := fmt.Sprintf("%s-%s-%04d", prefix, date, seq)
		taken, err := checker(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check document number %s: %w", candidate, err)
		}
		if !taken {
			s.lastSeq[key] = seq
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: number sequence exhausted for prefix %q on %s", apperrors.ErrInternal, prefix, date)
}
