package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

// Claims is the payload of a session token. The subject holds the user id.
type Claims struct {
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 session tokens with a fixed lifetime.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWT(secret string, ttl time.Duration) *JWT {
	return &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for id that expires after the configured lifetime.
func (j *JWT) Issue(id domain.Identity) (string, time.Time, error) {
	now := j.now()
	exp := now.Add(j.ttl)
	claims := Claims{
		Email:  id.Email,
		RoleID: int(id.RoleID),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id.UserID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies signature and expiry of raw and returns the embedded
// identity. A verified token whose subject or role is not usable yields the
// zero Identity and no error, so role checks fail closed.
func (j *JWT) Parse(raw string) (domain.Identity, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return j.secret, nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Identity{}, err
	}
	if !tok.Valid {
		return domain.Identity{}, jwt.ErrTokenSignatureInvalid
	}
	return claims.identity(), nil
}

func (c Claims) identity() domain.Identity {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Identity{}
	}
	role := domain.Role(c.RoleID)
	if !role.Valid() {
		return domain.Identity{}
	}
	return domain.Identity{UserID: userID, Email: c.Email, RoleID: role}
}
