package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are JWT claims binding a client to its session
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// BeginResponse is returned when a session is created
type BeginResponse struct {
	Token   string       `json:"token"`
	Session *SessionView `json:"session"`
}
