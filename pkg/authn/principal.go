package authn

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies which principal collection a record belongs to.
type Kind string

const (
	KindUser   Kind = "user"
	KindVendor Kind = "vendor"
)

// ParseKind validates a kind value coming off the wire, typically from a
// reset-token payload.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindUser, KindVendor:
		return Kind(s), nil
	default:
		return "", ErrUnknownKind
	}
}

// DefaultProfileImage is assigned to users created without an avatar.
const DefaultProfileImage = "https://static.wishbay.dev/avatars/default.png"

// Credentials is the credential shape shared by both principal kinds. The
// password hash is excluded from JSON so it can never leak through a response
// payload; the store persists it under the bson "password" field.
type Credentials struct {
	ID            uuid.UUID `bson:"_id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	PasswordHash  []byte    `bson:"password" json:"-"`
	EmailVerified bool      `bson:"email_verified" json:"email_verified"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// User is a buyer account. Only users can carry the admin flag.
type User struct {
	Credentials `bson:",inline"`

	FirstName    string     `bson:"firstname" json:"firstname"`
	LastName     string     `bson:"lastname" json:"lastname"`
	Username     string     `bson:"username,omitempty" json:"username,omitempty"`
	PhoneNumber  string     `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Birthday     *time.Time `bson:"birthday,omitempty" json:"birthday,omitempty"`
	ProfileImage string     `bson:"profile_image" json:"profile_image"`
	IsAdmin      bool       `bson:"is_admin" json:"is_admin"`
}

// Vendor is a seller account.
type Vendor struct {
	Credentials `bson:",inline"`

	BrandName   string `bson:"brand_name" json:"brand_name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	LogoImage   string `bson:"logo_image,omitempty" json:"logo_image,omitempty"`
	PhoneNumber string `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
}

// Principal is the capability surface the orchestrator works against. Both
// concrete variants live in this package, so the credential accessor stays
// unexported and hashes never travel through public API.
type Principal interface {
	PrincipalID() uuid.UUID
	PrincipalKind() Kind
	PrincipalEmail() string
	IsEmailVerified() bool

	creds() *Credentials
}

func (u *User) PrincipalID() uuid.UUID { return u.ID }
func (u *User) PrincipalKind() Kind { return KindUser }
func (u *User) PrincipalEmail() string { return u.Email }
func (u *User) IsEmailVerified() bool { return u.EmailVerified }
func (u *User) creds() *Credentials { return &u.Credentials }

func (v *Vendor) PrincipalID() uuid.UUID { return v.ID }
func (v *Vendor) PrincipalKind() Kind { return KindVendor }
func (v *Vendor) PrincipalEmail() string { return v.Email }
func (v *Vendor) IsEmailVerified() bool { return v.EmailVerified }
func (v *Vendor) creds() *Credentials { return &v.Credentials }
