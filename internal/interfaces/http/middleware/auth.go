package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	authusecases "helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	authenticateUC authusecases.AuthenticateExecutor
	logger         logger.Interface
}

func NewAuthMiddleware(authenticateUC authusecases.AuthenticateExecutor, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticateUC: authenticateUC,
		logger:         logger,
	}
}

// RequireAuth resolves the bearer token to an active user. The role placed in
// the context comes from the stored user, not from the token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			c.Abort()
			return
		}

		current, err := m.authenticateUC.Execute(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			m.logger.Warnw("authentication failed", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, current.ID())
		c.Set(constants.ContextKeyUserRole, current.Role().String())
		c.Set(constants.ContextKeyUser, current)

		c.Next()
	}
}
