package utils

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

// GetUserIDFromContext returns the caller id stored by the auth middleware.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("invalid user context")
	}
	return userID, nil
}

// GetActorFromContext returns the authenticated caller with the role
// resolved by the auth middleware.
func GetActorFromContext(c *gin.Context) (authorization.Actor, error) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return authorization.Actor{}, err
	}
	role, _ := c.Get(constants.ContextKeyUserRole)
	roleStr, _ := role.(string)
	return authorization.Actor{UserID: userID, Role: authorization.ParseUserRole(roleStr)}, nil
}
