package utils

import (
	"context"
	"errors"
)

type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
	UserIDKey ContextKey = "user_id"
	EmailKey  ContextKey = "email"
	RolesKey  ContextKey = "roles"
)

var (
	ErrNoUserIDInContext = errors.New("no user_id found in context")
	ErrInvalidUserIDType = errors.New("user_id must be a non-empty string")
)

func GetUserIDFromContext(c context.Context) (string, error) {
	value := c.Value(UserIDKey)
	if value == nil {
		return "", ErrNoUserIDInContext
	}

	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", ErrInvalidUserIDType
	}

	return userID, nil
}

// GetEmailFromContext returns "" when the token carried no email
func GetEmailFromContext(c context.Context) string {
	email, _ := c.Value(EmailKey).(string)
	return email
}

func GetRolesFromContext(c context.Context) []string {
	roles, _ := c.Value(RolesKey).([]string)
	return roles
}
