package utils

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// ParseSessionJWT unwraps the session ID carried by a client token.
func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", exceptions.ErrTokenInvalid(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims["session_id"].(string); ok {
			return sessionID, nil
		}
	}

	return "", exceptions.ErrTokenInvalid(nil)
}
