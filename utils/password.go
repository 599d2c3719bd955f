package utils

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// HashPassword derives the stored credential from a raw password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword checks a raw password against the stored credential in
// constant time. A non-nil error means mismatch.
func ComparePassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
