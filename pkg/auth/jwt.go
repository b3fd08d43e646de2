package auth

import (
	"errors"
	"fmt"
	"time"

	"recharge-travels-service/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carried by access tokens
type Claims struct {
	jwt.RegisteredClaims

	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Verifier validates HS256 bearer tokens
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), now: time.Now}
}

// Verify parses tokenString and returns the user it identifies
func (v *Verifier) Verify(tokenString string) (*entity.User, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: no signing secret configured", ErrInvalidToken)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	tok, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	role := claims.Role
	if role == "" {
		role = entity.RoleCustomer
	}

	return &entity.User{
		ID:          claims.Subject,
		DisplayName: claims.Name,
		Email:       claims.Email,
		Role:        role,
	}, nil
}

// Issue signs a token for user valid for ttl. Used by tooling and tests.
func (v *Verifier) Issue(user entity.User, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  user.DisplayName,
		Email: user.Email,
		Role:  user.Role,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
