package server

import (
	"net/http"

	"github.com/diskusiapp/diskusi/service"
	Logger "github.com/diskusiapp/diskusi/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// bindJSON binds and validates a request body. On schema mismatch it writes
// the field-level error envelope {errors: {field: [..]}} and returns false.
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := map[string][]string{}
		for _, fe := range fieldErrs {
			fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
	return false
}

// abortWithError translates a service error kind into the HTTP error
// envelope. Collaborator failures are logged with full detail and surfaced
// as a generic 500.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		Logger.Log.Error("internal error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
