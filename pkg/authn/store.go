package authn

import (
	"context"

	"github.com/google/uuid"
)

// PrincipalStore is the durable persistence contract for both principal
// kinds. Implementations must make every write visible before returning and
// must enforce email uniqueness across BOTH collections on create: a user and
// a vendor may never share an address, which is what keeps the any-kind
// lookups unambiguous.
//
// Lookups return ErrPrincipalNotFound when no record matches; creates return
// ErrEmailTaken on a collision in either collection.
type PrincipalStore interface {
	// FindByEmail looks up one kind by normalized email.
	FindByEmail(ctx context.Context, kind Kind, email string) (Principal, error)

	// FindAnyByEmail looks across both kinds, users first. The cross-kind
	// uniqueness invariant guarantees at most one match.
	FindAnyByEmail(ctx context.Context, email string) (Principal, error)

	FindByID(ctx context.Context, kind Kind, id uuid.UUID) (Principal, error)

	// CreateUser and CreateVendor persist a new principal and stamp
	// CreatedAt/UpdatedAt.
	CreateUser(ctx context.Context, user *User) error
	CreateVendor(ctx context.Context, vendor *Vendor) error

	// UpdatePasswordHash replaces the stored hash and bumps UpdatedAt.
	UpdatePasswordHash(ctx context.Context, kind Kind, id uuid.UUID, hash []byte) error

	// MarkEmailVerified flips the verification flag to true. The transition
	// is monotonic; there is no way back to unverified.
	MarkEmailVerified(ctx context.Context, kind Kind, id uuid.UUID) error
}
