package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"action-plan-assistant/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingUser  = errors.New("token has no subject")
)

// Manager verifies and issues HS256 bearer tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(userID string) (string, error)
}

// Payload is the claim set carried by every token.
type Payload struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Scope converts the payload into the use case caller scope.
func (p Payload) Scope() model.Scope {
	return model.Scope{UserID: p.UserID}
}

type implManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// New returns a Manager signing with secret. ttl applies to CreateToken only.
func New(secret, issuer string, ttl time.Duration) Manager {
	return &implManager{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

func (m *implManager) CreateToken(userID string) (string, error) {
	if userID == "" {
		return "", ErrMissingUser
	}
	now := m.now()
	claims := Payload{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *implManager) Verify(token string) (Payload, error) {
	var p Payload
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &p, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if p.UserID == "" {
		p.UserID = p.Subject
	}
	if p.UserID == "" {
		return Payload{}, ErrMissingUser
	}
	return p, nil
}
