package utils

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/okanay/backend-blog-core/configs"
)

// EncryptPassword hashes a plaintext password. bcrypt is intentionally
// expensive; callers must keep this off latency-sensitive paths.
func EncryptPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), configs.BCRYPT_COST)
	if err != nil {
		return "", err
	}

	return string(hashBytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
