package middleware

import (
	"errors"
	"strings"

	autherrors "go-hris-etl/internal/auth/errors"
	"go-hris-etl/internal/config"
	"go-hris-etl/internal/shared/apperror"
	"go-hris-etl/internal/shared/contextutil"
	"go-hris-etl/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}

// AuthMiddleware accepts a bearer token (or access_token cookie) signed with
// HS256 for the configured issuer and audience, and exposes its tenant_id
// claim as "tenant_id" on the gin context and on the request context.
func AuthMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims := jwt.MapClaims{}
		_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			return []byte(cfg.Secret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		tenantID, ok := claims["tenant_id"].(string)
		if !ok || tenantID == "" {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		c.Set("tenant_id", tenantID)

		ctx := contextutil.WithTenantID(c.Request.Context(), tenantID)
		logger := contextutil.GetLogger(ctx, zap.L())
		ctx = contextutil.WithLogger(ctx, logger.With(zap.String("tenant_id", tenantID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
