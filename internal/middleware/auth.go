package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
	"github.com/wesamghrayeb/crm-app/internal/auth"
	"github.com/wesamghrayeb/crm-app/internal/domain"
)

// ClientIDKey is where Auth stores the authenticated identity for handlers.
const ClientIDKey = "client_id"

type roleLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

// Auth verifies the bearer token and exposes the caller's id. The core trusts
// this identity without re-verifying credentials.
func Auth(tm *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := tm.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(ClientIDKey, claims.Subject)
		c.Next()
	}
}

// AdminOnly gates admin routes. The role is re-read from the ledger rather
// than trusted from the token, so a demoted admin loses access immediately.
func AdminOnly(clients roleLookup) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		client, err := clients.GetByID(c.Request.Context(), c.GetString(ClientIDKey))
		if err != nil || client.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin only"})
			return
		}

		c.Next()
	}
}
