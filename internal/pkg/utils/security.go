package utils

import (
	"careportal-service/internal/pkg/exceptions"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// HashPin uses the same bcrypt parameters as passwords. PINs are short, so the
// stored hash is only as strong as the 4-6 digit space; the gate is a possession
// factor on top of the session, not a password replacement.
func HashPin(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", exceptions.ErrHashPin(err)
	}
	return string(bytes), nil
}

func CheckPinHash(pin, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	return err == nil
}
