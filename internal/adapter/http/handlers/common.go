package handlers

import (
	"errors"
	"net/http"
	"strings"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	headerCompanyID = "X-Company-ID"
	headerUserID    = "X-User-ID"
)

var (
	errTenantRequired = apperror.Validation("TENANT_REQUIRED", "Missing X-Company-ID header")
	errInvalidPayload = apperror.Validation("INVALID_REQUEST", "Invalid request payload")
)

// companyID extracts the tenant from the request. Internal endpoints are
// tenant-header-scoped; authn itself is out of scope here.
func companyID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(headerCompanyID))
	if id == "" {
		renderAppError(c, errTenantRequired)
		return "", false
	}
	return id, true
}

// userActor identifies an internal operator for the audit trail.
func userActor(c *gin.Context) entities.Actor {
	return entities.Actor{
		Type:      "user",
		ID:        strings.TrimSpace(c.GetHeader(headerUserID)),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// customerActor identifies an anonymous portal visitor; the token resolves
// who they are.
func customerActor(c *gin.Context) entities.Actor {
	return entities.Actor{
		Type:      "customer",
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func renderAppError(c *gin.Context, e *apperror.AppError) {
	c.JSON(e.HTTPStatus, e.ToHTTPError())
}

// renderError maps any use-case error onto the wire. Everything the billing
// core returns is already an AppError; anything else is an internal fault.
func renderError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		renderAppError(c, appErr)
		return
	}
	renderAppError(c, apperror.Internal(err))
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		renderAppError(c, errInvalidPayload)
		return false
	}
	return true
}

func created(c *gin.Context, body any) { c.JSON(http.StatusCreated, body) }
func ok(c *gin.Context, body any)      { c.JSON(http.StatusOK, body) }
