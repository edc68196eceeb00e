package utils

import (
	"fmt"
	"time"

	"careportal-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTime int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}
