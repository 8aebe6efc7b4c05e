// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/config"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/policy"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(ctx context.Context, u NewUser) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type Service struct {
	repo        Repository
	tokens      *TokenIssuer
	users       UserProvider
	exchanger   SessionExchanger
	revocations *Revocations
	sessionTTL  time.Duration
	now         func() time.Time
}

func NewService(
	repo Repository,
	tokens *TokenIssuer,
	users UserProvider,
	exchanger SessionExchanger,
	revocations *Revocations,
	cfg config.SessionConfig,
) *Service {
	return &Service{
		repo:        repo,
		tokens:      tokens,
		users:       users,
		exchanger:   exchanger,
		revocations: revocations,
		sessionTTL:  cfg.TTL,
		now:         time.Now,
	}
}

// WithClock sets the time source for session expiry checks.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*TokenResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, NewUser{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Role:         policy.RoleOrDefault(req.Role),
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // spend the same time as a real check
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, "")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		user.PasswordHash,
	)
	if err != nil {
		slog.WarnContext(ctx, "stored password hash unreadable",
			"user_id", user.ID,
			"error", err,
		)
		return nil, ErrInvalidCredentials
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.users.UpdatePassword(ctx, user.ID, newHash)
	}

	return s.issue(user)
}

// GoogleSession trades an OAuth session id for the user's identity,
// creating the user on first sight, and stores the opaque session token
// the exchange service handed back.
func (s *Service) GoogleSession(
	ctx context.Context,
	sessionID string,
) (*GoogleSessionResponse, error) {
	ctx, span := core.StartSpan(ctx, "auth.google_session")
	defer span.End()

	oauth, err := s.exchanger.Exchange(ctx, sessionID)
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, core.UpstreamError(err)
	}
	span.SetAttributes(attribute.String("user.email", oauth.Email))

	user, err := s.findOrCreateOAuthUser(ctx, oauth)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := &Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: core.HashToken(oauth.SessionToken),
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		if !errors.Is(err, core.ErrDuplicateKey) {
			return nil, fmt.Errorf("store session: %w", err)
		}
		slog.InfoContext(ctx, "session token already stored", "user_id", user.ID)
	}

	return &GoogleSessionResponse{
		User:         ToUserResponse(user),
		SessionToken: oauth.SessionToken,
	}, nil
}

func (s *Service) findOrCreateOAuthUser(
	ctx context.Context,
	oauth *OAuthSession,
) (*UserInfo, error) {
	user, err := s.users.GetByEmail(ctx, oauth.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("get user: %w", err)
	}

	user, err = s.users.Create(ctx, NewUser{
		Email:   oauth.Email,
		Name:    oauth.Name,
		Picture: oauth.Picture,
		Role:    policy.DefaultRole,
	})
	if errors.Is(err, core.ErrDuplicateKey) {
		// concurrent first login for the same email
		user, err = s.users.GetByEmail(ctx, oauth.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("create oauth user: %w", err)
	}

	return user, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Logout deletes every stored session for the credential and, when it is
// a still valid signed token, denies it until its natural expiry.
func (s *Service) Logout(ctx context.Context, credential string) error {
	if credential == "" {
		return nil
	}

	if _, err := s.repo.RevokeByToken(ctx, core.HashToken(credential)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	claims, err := s.tokens.Validate(credential)
	if err != nil {
		return nil //nolint:nilerr // not a signed token, nothing more to revoke
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if err := s.revocations.Revoke(ctx, claims.JTI, ttl); err != nil {
		slog.WarnContext(ctx, "signed token not revoked",
			"user_id", claims.UserID,
			"error", err,
		)
	}

	return nil
}

// Resolve maps a credential to a principal: stored session first, then
// signed token. Anything that resolves to nothing is ErrInvalidSession.
func (s *Service) Resolve(
	ctx context.Context,
	credential string,
) (*policy.Principal, error) {
	session, err := s.repo.FindActive(ctx, core.HashToken(credential), s.now())
	switch {
	case err == nil:
		user, userErr := s.users.GetByID(ctx, session.UserID)
		if userErr == nil {
			return toPrincipal(user), nil
		}
		if !errors.Is(userErr, core.ErrNotFound) {
			return nil, fmt.Errorf("resolve session user: %w", userErr)
		}
	case !errors.Is(err, core.ErrNotFound):
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	claims, err := s.tokens.Validate(credential)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", core.ErrInvalidSession)
	}

	if s.revocations.IsRevoked(ctx, claims.JTI) {
		return nil, fmt.Errorf("resolve: %w", core.ErrTokenRevoked)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("resolve: %w", core.ErrInvalidSession)
		}
		return nil, fmt.Errorf("resolve token user: %w", err)
	}

	return toPrincipal(user), nil
}

func (s *Service) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return n, nil
}

// RunJanitor purges expired sessions every interval until ctx ends.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpiredSessions(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "session janitor failed", "error", err)
				continue
			}
			if n > 0 {
				slog.InfoContext(ctx, "expired sessions purged", "count", n)
			}
		}
	}
}

func (s *Service) issue(user *UserInfo) (*TokenResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
	}, nil
}

func toPrincipal(u *UserInfo) *policy.Principal {
	return &policy.Principal{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		Division: u.Division,
		Region:   u.Region,
	}
}
