package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService manages JWT token generation and validation for the
// websocket and API surface
type AuthService struct {
	secretKey   string
	tokenExpiry time.Duration
}

// AgentClaims represents the JWT claims structure
type AgentClaims struct {
	ClientName string `json:"client_name"`
	jwt.RegisteredClaims
}

var authService *AuthService

// InitAuthService initializes the authentication service. An empty
// secret key loads the persisted key from disk, generating and saving
// one on first run.
func InitAuthService(secretKey string, tokenExpiry time.Duration) *AuthService {
	if secretKey == "" {
		secretKey = loadOrGenerateSecret()
	}
	secretKey = strings.TrimSpace(secretKey)

	// HMAC-SHA256 wants at least 32 bytes of key material
	if len(secretKey) < 32 {
		padding := make([]byte, 32-len(secretKey))
		_, _ = rand.Read(padding)
		secretKey = secretKey + hex.EncodeToString(padding)
	}

	if tokenExpiry == 0 {
		tokenExpiry = 90 * 24 * time.Hour
	}

	authService = &AuthService{
		secretKey:   secretKey,
		tokenExpiry: tokenExpiry,
	}
	return authService
}

func loadOrGenerateSecret() string {
	homeDir, _ := os.UserHomeDir()
	keyFile := filepath.Join(homeDir, ".netpulse-secret-key")
	if homeDir == "" {
		keyFile = filepath.Join(os.TempDir(), ".netpulse-secret-key")
	}

	if data, err := os.ReadFile(keyFile); err == nil && len(data) > 0 {
		log.Printf("[AUTH] Loaded persisted secret key from %s", keyFile)
		return strings.TrimSpace(string(data))
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "netpulse-agent"
	}

	randomBytes := make([]byte, 16)
	var secret string
	if _, err := rand.Read(randomBytes); err != nil {
		secret = fmt.Sprintf("netpulse-%s-%d", hostname, time.Now().UnixNano())
	} else {
		secret = fmt.Sprintf("netpulse-%s-%s", hostname, hex.EncodeToString(randomBytes))
	}

	if err := os.WriteFile(keyFile, []byte(secret), 0600); err != nil {
		log.Printf("[AUTH] ⚠️  Could not persist secret key to %s: %v", keyFile, err)
	} else {
		log.Printf("[AUTH] Generated and persisted secret key to %s", keyFile)
	}
	return secret
}

// GenerateToken creates a new JWT token for a client
func GenerateToken(clientName string) (string, error) {
	if authService == nil {
		return "", fmt.Errorf("auth service not initialized")
	}

	now := time.Now()
	claims := AgentClaims{
		ClientName: clientName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(authService.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "netpulse-agent",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authService.secretKey))
}

// ValidateToken verifies and parses a JWT token
func ValidateToken(tokenString string) (*AgentClaims, error) {
	if authService == nil {
		return nil, fmt.Errorf("auth service not initialized")
	}

	claims := &AgentClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(authService.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// GetTokenExpiry returns when a token issued now would expire
func GetTokenExpiry() time.Time {
	if authService == nil {
		return time.Time{}
	}
	return time.Now().Add(authService.tokenExpiry)
}
