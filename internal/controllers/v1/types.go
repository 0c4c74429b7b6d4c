// Package v1 implements the HTTP handlers of the v1 API.
package v1

import (
	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/uuid"
)

// URIOwner binds the owner from the request path.
type URIOwner struct {
	UserID string `uri:"userId" binding:"required"` // Opaque ID of the user owning the resources
}

// URIOwnerID binds the owner and a resource ID from the request path.
type URIOwnerID struct {
	URIOwner
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// QueryMonth binds the month a summary or report is requested for.
type QueryMonth struct {
	Month string `form:"month" example:"2024-05"` // Year and month in YYYY-MM format
}
