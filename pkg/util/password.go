package util

import (
	"golang.org/x/crypto/bcrypt"
)

// 비밀번호 해싱 비용. bcrypt 기본값(10)보다 한 단계 높임
const bcryptCost = 12

// HashPassword returns the bcrypt hash of a plain-text password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plain-text password matches the stored hash
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
