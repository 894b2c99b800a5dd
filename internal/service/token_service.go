package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tempmail-api/internal/domain"
)

// TokenService emite y valida los JWT de acceso y de refresh.
// Cada tipo de token firma con su propio secret: poseer uno no permite
// falsificar el otro.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

// TokenPair agrupa un access y un refresh token recién emitidos.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type Claims struct {
	UserID    string `json:"uid"`
	Email     string `json:"email"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        "tempmail-api",
	}
}

// AccessTTL expone la vigencia del access token para alinear el Max-Age de la cookie.
func (s *TokenService) AccessTTL() time.Duration { return s.accessTTL }

// RefreshTTL expone la vigencia del refresh token.
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

// IssueAccess firma un access token para el usuario.
func (s *TokenService) IssueAccess(user domain.User) (string, error) {
	return s.signToken(user, s.accessSecret, s.accessTTL, tokenTypeAccess)
}

// IssueRefresh firma un refresh token para el usuario.
func (s *TokenService) IssueRefresh(user domain.User) (string, error) {
	return s.signToken(user, s.refreshSecret, s.refreshTTL, tokenTypeRefresh)
}

// GeneratePair emite access y refresh juntos; es la unidad de rotación.
func (s *TokenService) GeneratePair(user domain.User) (TokenPair, error) {
	access, err := s.IssueAccess(user)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.IssueRefresh(user)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess valida un access token y devuelve sus claims.
// El caller debe chequear presencia antes: acá un token vacío es inválido.
func (s *TokenService) VerifyAccess(token string) (Claims, error) {
	return s.verifyToken(token, s.accessSecret, tokenTypeAccess)
}

// VerifyRefresh valida un refresh token y devuelve sus claims.
func (s *TokenService) VerifyRefresh(token string) (Claims, error) {
	return s.verifyToken(token, s.refreshSecret, tokenTypeRefresh)
}

func (s *TokenService) signToken(user domain.User, secret []byte, ttl time.Duration, tokenType string) (string, error) {
	if len(secret) == 0 {
		return "", ErrTokenInvalid
	}
	now := time.Now().UTC()
	claims := Claims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *TokenService) verifyToken(tokenString string, secret []byte, tokenType string) (Claims, error) {
	if len(secret) == 0 || strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrTokenInvalid
	}
	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if claims.TokenType != tokenType {
		return Claims{}, ErrTokenInvalid
	}
	if !s.isValidClaims(claims) {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}

func (s *TokenService) isValidClaims(claims Claims) bool {
	if strings.TrimSpace(claims.UserID) == "" {
		return false
	}
	if claims.Subject != claims.UserID {
		return false
	}
	return claims.Issuer == s.issuer
}
