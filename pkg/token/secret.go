package token

import (
	"crypto/rand"
)

// signingKeySize 256 бит для HS256
const signingKeySize = 32

// GenerateSigningKey - случайный ключ подписи токенов игр
func GenerateSigningKey() ([]byte, error) {
	b := make([]byte, signingKeySize)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}

	return b, nil
}
