package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/protouch/protouch/internal/config"
	"github.com/protouch/protouch/internal/models"
)

// JWTClaims represents JWT claims structure. Subscription state rides in
// the token so the payment gate can decide without a database round trip.
type JWTClaims struct {
	UserID             uuid.UUID `json:"user_id"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	SubscriptionTier   string    `json:"subscription_tier"`
	SubscriptionStatus string    `json:"subscription_status"`
	jwt.RegisteredClaims
}

// JWTMiddleware creates JWT auth middleware
func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Authorization header is required",
			})
		}

		tokenString := ""
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		} else {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid authorization format",
			})
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid or expired token",
			})
		}

		// Add claims to context for later use
		c.Locals("userID", claims.UserID)
		c.Locals("role", claims.Role)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// GenerateJWT creates a new JWT token carrying the viewer's role and
// subscription state
func GenerateJWT(user *models.User, role string, secret string, expiration time.Duration) (string, error) {
	claims := JWTClaims{
		UserID:             user.ID,
		Email:              user.Email,
		Role:               role,
		SubscriptionTier:   user.SubscriptionTier,
		SubscriptionStatus: user.SubscriptionStatus,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ClaimsSession adapts JWT claims to the gate.Session interface
type ClaimsSession struct {
	Claims *JWTClaims
}

func (s ClaimsSession) Role() string               { return s.Claims.Role }
func (s ClaimsSession) SubscriptionTier() string   { return s.Claims.SubscriptionTier }
func (s ClaimsSession) SubscriptionStatus() string { return s.Claims.SubscriptionStatus }

// SessionFromCtx extracts the viewer session placed by JWTMiddleware
func SessionFromCtx(c *fiber.Ctx) ClaimsSession {
	if claims, ok := c.Locals("claims").(*JWTClaims); ok {
		return ClaimsSession{Claims: claims}
	}
	return ClaimsSession{Claims: &JWTClaims{}}
}
