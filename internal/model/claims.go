package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// GameClaims Токен доступа к партии: Subject - ID игры
type GameClaims struct {
	jwt.RegisteredClaims
}
