package token

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

type Service interface {
	NewToken(userId string) (string, error)
	DecodeUserId(tokenStr string) (string, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) Service {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(userId string) (string, error) {
	claims := jwt.MapClaims{
		"uid": userId,
		"exp": time.Now().Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", errors.New("can't create token")
	}

	return tokenString, nil
}

// DecodeUserId validates the token and returns the authenticated user id.
func (j *Jwt) DecodeUserId(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", &internal_errors.ErrorWithStatusCode{Message: "invalid token signature", StatusCode: http.StatusUnauthorized}
	}
	if !token.Valid {
		return "", &internal_errors.ErrorWithStatusCode{Message: "invalid access token", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", &internal_errors.ErrorWithStatusCode{Message: "invalid token claims", StatusCode: http.StatusUnauthorized}
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", &internal_errors.ErrorWithStatusCode{Message: "invalid token claims", StatusCode: http.StatusUnauthorized}
	}

	return uid, nil
}
