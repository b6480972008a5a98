package serverutils

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenRevoker reports whether a token id has been revoked (logout).
type TokenRevoker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// revoker is set once at startup. Nil means revocation checks are skipped,
// which keeps the middleware usable in tests.
var revoker TokenRevoker

func SetTokenRevoker(r TokenRevoker) {
	revoker = r
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	if revoker != nil {
		if jti, ok := claims["jti"].(string); ok && jti != "" {
			revoked, err := revoker.IsRevoked(ctx.Context(), jti)
			if err == nil && revoked {
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token revoked"})
			}
		}
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("role", claims["role"])
	ctx.Locals("jti", claims["jti"])
	return ctx.Next()
}

// AdminMiddleware requires JwtMiddleware to have run first.
func AdminMiddleware(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Admin access required"})
	}
	return ctx.Next()
}
