package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

// CityRepository defines city data access operations
type CityRepository interface {
	List(ctx context.Context) ([]*City, error)
	FindByID(ctx context.Context, id string) (*City, error)
}

// BlogRepository defines blog post data access operations
type BlogRepository interface {
	List(ctx context.Context) ([]*BlogPost, error)
	FindByID(ctx context.Context, id string) (*BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
	Create(ctx context.Context, post *BlogPost) error
}

// SessionStore maps opaque bearer tokens to session users. Implementations
// must be safe for concurrent use.
type SessionStore interface {
	Put(ctx context.Context, token string, user *SessionUser) error
	Get(ctx context.Context, token string) (*SessionUser, error)
	Delete(ctx context.Context, token string) error
}

// OTPStore maps emails to live password-reset codes. Implementations must
// be safe for concurrent use.
type OTPStore interface {
	Put(ctx context.Context, email string, record *OTPRecord) error
	Get(ctx context.Context, email string) (*OTPRecord, error)
	Delete(ctx context.Context, email string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, password, name, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetSession(ctx context.Context, token string) (*SessionUser, error)
	Logout(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// BlogService defines blog post business logic
type BlogService interface {
	ListPosts(ctx context.Context) ([]*BlogPost, error)
	GetPost(ctx context.Context, idOrSlug string) (*BlogPost, error)
	CreatePost(ctx context.Context, title, content string, author *SessionUser) (*BlogPost, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenSource mints opaque session tokens
type TokenSource interface {
	Mint() (string, error)
}

// Mailer delivers password-reset codes
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() ([][]string, error)
}

// CasbinEnforcer is the subset of the Casbin enforcer the service relies on
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
