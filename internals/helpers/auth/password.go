// file: internals/helpers/auth/password.go
package auth

import "golang.org/x/crypto/bcrypt"

// Custo 12: mesmo fator usado desde o primeiro deploy — não reduzir.
const bcryptCost = 12

// HashPassword gera o hash bcrypt da senha em texto puro.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash compara senha em texto puro com o hash armazenado.
func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
