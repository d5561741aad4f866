package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword crea un hash bcrypt del password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifica el password contra el hash.
// Devuelve false ante un hash malformado, nunca lanza panic.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
