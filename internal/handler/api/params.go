package api

import (
	"time"

	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/pkg/ptr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// optionalDate parses a YYYY-MM-DD query value already checked by the isodate tag.
func optionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := stay.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return ptr.Of(d), nil
}

func optionalUUID(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return ptr.Of(id), nil
}
