package authn

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory PrincipalStore for tests and single-process
// development. Records are copied on the way in and out, so callers can only
// mutate state through store methods, same as with a real database.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]User
	vendors map[uuid.UUID]Vendor
	now     func() time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithMemoryClock replaces the timestamp source.
func WithMemoryClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		users:   make(map[uuid.UUID]User),
		vendors: make(map[uuid.UUID]Vendor),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) FindByEmail(ctx context.Context, kind Kind, email string) (Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findByEmailLocked(kind, email)
}

func (s *MemoryStore) FindAnyByEmail(ctx context.Context, email string) (Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, err := s.findByEmailLocked(KindUser, email); err == nil {
		return p, nil
	}
	return s.findByEmailLocked(KindVendor, email)
}

func (s *MemoryStore) findByEmailLocked(kind Kind, email string) (Principal, error) {
	switch kind {
	case KindUser:
		for _, u := range s.users {
			if u.Email == email {
				copied := u
				return &copied, nil
			}
		}
	case KindVendor:
		for _, v := range s.vendors {
			if v.Email == email {
				copied := v
				return &copied, nil
			}
		}
	default:
		return nil, ErrUnknownKind
	}
	return nil, ErrPrincipalNotFound
}

func (s *MemoryStore) FindByID(ctx context.Context, kind Kind, id uuid.UUID) (Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case KindUser:
		if u, ok := s.users[id]; ok {
			copied := u
			return &copied, nil
		}
	case KindVendor:
		if v, ok := s.vendors[id]; ok {
			copied := v
			return &copied, nil
		}
	default:
		return nil, ErrUnknownKind
	}
	return nil, ErrPrincipalNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTakenLocked(user.Email) {
		return ErrEmailTaken
	}

	now := s.now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) CreateVendor(ctx context.Context, vendor *Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTakenLocked(vendor.Email) {
		return ErrEmailTaken
	}

	now := s.now()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now
	s.vendors[vendor.ID] = *vendor
	return nil
}

func (s *MemoryStore) emailTakenLocked(email string) bool {
	for _, u := range s.users {
		if u.Email == email {
			return true
		}
	}
	for _, v := range s.vendors {
		if v.Email == email {
			return true
		}
	}
	return false
}

func (s *MemoryStore) UpdatePasswordHash(ctx context.Context, kind Kind, id uuid.UUID, hash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case KindUser:
		u, ok := s.users[id]
		if !ok {
			return ErrPrincipalNotFound
		}
		u.PasswordHash = append([]byte(nil), hash...)
		u.UpdatedAt = s.now()
		s.users[id] = u
	case KindVendor:
		v, ok := s.vendors[id]
		if !ok {
			return ErrPrincipalNotFound
		}
		v.PasswordHash = append([]byte(nil), hash...)
		v.UpdatedAt = s.now()
		s.vendors[id] = v
	default:
		return ErrUnknownKind
	}
	return nil
}

// PromoteAdmin sets the admin flag on a user. Admins are provisioned
// out-of-band in production; this exists for tests and local seeding.
func (s *MemoryStore) PromoteAdmin(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrPrincipalNotFound
	}
	u.IsAdmin = true
	u.UpdatedAt = s.now()
	s.users[id] = u
	return nil
}

func (s *MemoryStore) MarkEmailVerified(ctx context.Context, kind Kind, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case KindUser:
		u, ok := s.users[id]
		if !ok {
			return ErrPrincipalNotFound
		}
		u.EmailVerified = true
		u.UpdatedAt = s.now()
		s.users[id] = u
	case KindVendor:
		v, ok := s.vendors[id]
		if !ok {
			return ErrPrincipalNotFound
		}
		v.EmailVerified = true
		v.UpdatedAt = s.now()
		s.vendors[id] = v
	default:
		return ErrUnknownKind
	}
	return nil
}
