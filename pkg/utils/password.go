package utils

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// HashPassword derives the bcrypt hash stored on the user row.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// ComparePassword reports whether the plain text password matches the
// stored hash.
func ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
