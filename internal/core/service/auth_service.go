package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/core/ports"
)

// AuthService implements login, registration, logout and session reads over
// the persisted store. Every mutation is one store cycle; a failed lookup
// aborts the cycle so the document (and the session inside it) is untouched.
type AuthService struct {
	store     ports.DocumentStore
	scheme    CredentialScheme
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(store ports.DocumentStore, scheme CredentialScheme, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if scheme == nil {
		scheme = PlainScheme{}
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{store: store, scheme: scheme, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login matches email case-insensitively and the password through the active
// credential scheme. Unknown email and wrong password both surface as
// ErrInvalidCredentials so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	var session *domain.Session
	err := s.store.Mutate(ctx, func(db *domain.Database) error {
		user := db.FindUserByEmail(email)
		if user == nil || !s.scheme.Verify(user.Password, password) {
			return domain.ErrInvalidCredentials
		}
		session = &domain.Session{User: user.Redact()}
		db.Session = session
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.signToken(session.User)
	if err != nil {
		return "", nil, err
	}
	return token, session, nil
}

// Register creates a new user and logs it in. The email must be unused,
// compared case-insensitively; a duplicate leaves the users collection
// unchanged.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.Session, error) {
	if !domain.ValidRole(in.Role) {
		return "", nil, domain.ErrInvalidRole
	}

	stored, err := s.scheme.Store(in.Password)
	if err != nil {
		return "", nil, err
	}

	var session *domain.Session
	err = s.store.Mutate(ctx, func(db *domain.Database) error {
		if db.FindUserByEmail(in.Email) != nil {
			return domain.ErrEmailAlreadyRegistered
		}
		user := domain.User{
			ID:        domain.NewID("u"),
			Name:      in.Name,
			Email:     in.Email,
			Password:  stored,
			Role:      in.Role,
			CreatedAt: domain.NowMillis(),
		}
		db.Users = append(db.Users, user)
		session = &domain.Session{User: user.Redact()}
		db.Session = session
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.signToken(session.User)
	if err != nil {
		return "", nil, err
	}
	return token, session, nil
}

// Logout clears the session. Logging out while already logged out is a valid
// write that still notifies observers.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Mutate(ctx, func(db *domain.Database) error {
		db.Session = nil
		return nil
	})
}

// Session returns the current session, or nil when nobody is logged in.
func (s *AuthService) Session(ctx context.Context) (*domain.Session, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return db.Session, nil
}

func (s *AuthService) signToken(user domain.SessionUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
