package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink.app/backend/internal/identity"
	"fitlink.app/backend/pkg/apperror"
)

// identityKey is the gin context key the auth middleware stores the
// caller identity under.
const identityKey = "identity"

// SetIdentity stores the verified caller identity for this request.
func SetIdentity(c *gin.Context, id identity.Identity) {
	c.Set(identityKey, id)
}

// GetIdentity retrieves the authenticated caller identity from the context.
func GetIdentity(c *gin.Context) (identity.Identity, error) {
	val, exists := c.Get(identityKey)
	if !exists {
		return identity.Identity{}, apperror.ErrUnauthorized
	}

	id, ok := val.(identity.Identity)
	if !ok {
		return identity.Identity{}, apperror.ErrUnauthorized
	}

	return id, nil
}

// OptionalIdentity returns the caller identity when a valid token was
// presented, or nil on anonymous requests.
func OptionalIdentity(c *gin.Context) *identity.Identity {
	id, err := GetIdentity(c)
	if err != nil {
		return nil
	}
	return &id
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
