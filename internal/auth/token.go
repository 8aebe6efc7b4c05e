// AngelaMos | 2026
// token.go

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/config"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

const userIDClaim = "user_id"

type TokenClaims struct {
	UserID    string
	JTI       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer mints and checks the stateless HS256 tokens handed out by
// direct login and registration.
type TokenIssuer struct {
	secret []byte
	config config.JWTConfig
	now    func() time.Time
}

func NewTokenIssuer(cfg config.JWTConfig) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.Secret),
		config: cfg,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for issuing and validating.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	i.now = now
	return i
}

func (i *TokenIssuer) Issue(userID string) (string, time.Time, error) {
	now := i.now().UTC()
	expiresAt := now.Add(i.config.TokenExpire)

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(i.config.Issuer).
		Audience([]string{i.config.Audience}).
		Subject(userID).
		IssuedAt(now).
		Expiration(expiresAt).
		Claim(userIDClaim, userID).
		Build()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), i.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return string(signed), expiresAt, nil
}

// Validate fails closed: every decode, signature or claim problem comes
// back as ErrTokenInvalid, an elapsed exp as ErrTokenExpired.
func (i *TokenIssuer) Validate(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), i.secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(i.config.Issuer),
		jwt.WithAudience(i.config.Audience),
		jwt.WithClock(jwt.ClockFunc(i.now)),
	)
	if err != nil {
		if errors.Is(err, jwt.TokenExpiredError()) {
			return nil, fmt.Errorf("validate token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("validate token: %w", core.ErrTokenInvalid)
	}

	var userID string
	if err := token.Get(userIDClaim, &userID); err != nil || userID == "" {
		return nil, fmt.Errorf(
			"validate token: missing user_id claim: %w",
			core.ErrTokenInvalid,
		)
	}

	if subject, ok := token.Subject(); ok && subject != userID {
		return nil, fmt.Errorf(
			"validate token: subject mismatch: %w",
			core.ErrTokenInvalid,
		)
	}

	claims := &TokenClaims{UserID: userID}
	claims.JTI, _ = token.JwtID()
	claims.IssuedAt, _ = token.IssuedAt()
	claims.ExpiresAt, _ = token.Expiration()

	return claims, nil
}
