package model

import "github.com/golang-jwt/jwt/v5"

type UserDto struct {
	Id string `json:"id"`
	jwt.RegisteredClaims
}

type AccessToken struct {
	AccessToken string `json:"accessToken"`
}
