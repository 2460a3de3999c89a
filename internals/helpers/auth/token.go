package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"shiftlink_backend/internals/constants"
)

// Claims: isi access token. ID profil ikut di token supaya handler bisa membatasi
// query tanpa lookup tiap request.
type Claims struct {
	ID         string `json:"id"`
	Role       string `json:"role"`
	StudentID  string `json:"student_id,omitempty"`
	EmployerID string `json:"employer_id,omitempty"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// SignAccessToken menerbitkan token HS256 untuk actor.
func SignAccessToken(secret string, a Actor, ttl time.Duration, now time.Time) (string, time.Time, error) {
	exp := now.Add(ttl)
	claims := Claims{
		ID:   a.UserID.String(),
		Role: a.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	if a.StudentID != nil {
		claims.StudentID = a.StudentID.String()
	}
	if a.EmployerID != nil {
		claims.EmployerID = a.EmployerID.String()
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseAccessToken cek tanda tangan dan exp, lalu bangun ulang Actor.
func ParseAccessToken(secret, raw string) (Actor, error) {
	a, _, err := ParseAccessTokenExpiry(secret, raw)
	return a, err
}

// ParseAccessTokenExpiry sama dengan ParseAccessToken, ditambah klaim exp.
func ParseAccessTokenExpiry(secret, raw string) (Actor, time.Time, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Actor{}, time.Time{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(strings.TrimSpace(claims.ID))
	if err != nil {
		return Actor{}, time.Time{}, ErrInvalidToken
	}
	role := strings.ToLower(strings.TrimSpace(claims.Role))
	if !constants.IsKnownRole(role) {
		return Actor{}, time.Time{}, ErrInvalidToken
	}

	a := Actor{UserID: userID, Role: role}
	if id, ok := parseOptionalUUID(claims.StudentID); ok {
		a.StudentID = &id
	}
	if id, ok := parseOptionalUUID(claims.EmployerID); ok {
		a.EmployerID = &id
	}
	var exp time.Time
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return a, exp, nil
}

func parseOptionalUUID(s string) (uuid.UUID, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
