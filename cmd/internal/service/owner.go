package service

import (
	"sync"

	"oficinapro/cmd/internal/domain/entity"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

// resolveOwner maps a token subject onto the owning user row. Every
// owner-scoped operation starts here.
func resolveOwner(repo UserRepository, sub string) (*entity.User, apierror.ErrorResponse) {
	user, err := repo.FindBySub(sub)
	if err != nil {
		log.Errorf("failed to fetch user %s: %v", sub, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.InvalidAuthTokenError
	}
	return user, nil
}

// ownerLocks serializes read-compute-write sequences per owner so two
// concurrent requests cannot both act on the same stale snapshot
// (double-booked slot, lost stock update).
type ownerLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[int]*sync.Mutex)}
}

func (o *ownerLocks) lock(ownerID int) func() {
	o.mu.Lock()
	l, ok := o.locks[ownerID]
	if !ok {
		l = &sync.Mutex{}
		o.locks[ownerID] = l
	}
	o.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
