// Package handlers wires HTTP endpoints to the service layer.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"notary-api/internal/api/errors"
)

// parseUUIDParam parses a UUID path parameter.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.NewBadRequestError("Invalid " + name + " parameter")
	}
	return id, nil
}
