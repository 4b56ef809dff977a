package authjwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"

	"github.com/waveline-social/waveline/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// The EC public key for validating ES256 tokens.
	PublicKey string
	// The claim key where the user payload is stored.
	ClaimKey string
	// The context key to store the UserContext.
	UserCtxName string
}

// ConfigDefault is the default middleware configuration.
var ConfigDefault = Config{
	ClaimKey:    "claim",
	UserCtxName: types.UserCtxName,
}

// New creates a new middleware handler.
func New(cfg Config) fiber.Handler {
	if cfg.ClaimKey == "" {
		cfg.ClaimKey = ConfigDefault.ClaimKey
	}
	if cfg.UserCtxName == "" {
		cfg.UserCtxName = ConfigDefault.UserCtxName
	}

	// Parse the key once on startup.
	ecPublicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(cfg.PublicKey))
	if err != nil {
		panic(fmt.Sprintf("failed to parse EC public key: %v", err))
	}

	return func(c *fiber.Ctx) error {
		var tokenString string

		// 1. Try Authorization header first (for mobile/API clients)
		authHeader := c.Get(types.HeaderAuthorization)
		if authHeader != "" && strings.HasPrefix(authHeader, types.BearerPrefix) {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 {
				tokenString = parts[1]
			}
		}

		// 2. Fall back to access_token cookie (for web browsers)
		if tokenString == "" {
			tokenString = c.Cookies("access_token")
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or invalid JWT",
			})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// Enforce the expected signing algorithm.
			if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return ecPublicKey, nil
		})

		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		if exp, ok := claims["exp"].(float64); ok {
			if int64(exp) < time.Now().Unix() {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Token has expired",
				})
			}
		}

		claimData, claimOk := claims[cfg.ClaimKey].(map[string]interface{})
		if !claimOk {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token claim format",
			})
		}

		user, err := userContextFromClaim(claimData)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token claim format",
			})
		}

		c.Locals(cfg.UserCtxName, user)
		return c.Next()
	}
}

// userContextFromClaim builds the UserContext from the token's claim map.
func userContextFromClaim(claim map[string]interface{}) (types.UserContext, error) {
	uidStr, _ := claim[types.HeaderUID].(string)
	userID, err := uuid.FromString(uidStr)
	if err != nil {
		return types.UserContext{}, fmt.Errorf("invalid uid claim: %w", err)
	}

	username, _ := claim["username"].(string)
	displayName, _ := claim["displayName"].(string)
	avatar, _ := claim["avatar"].(string)
	role, _ := claim["role"].(string)
	if role == "" {
		role = types.UserRole
	}

	return types.UserContext{
		UserID:      userID,
		Username:    username,
		DisplayName: displayName,
		Avatar:      avatar,
		Role:        role,
	}, nil
}
