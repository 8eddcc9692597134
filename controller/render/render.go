// Package render holds the response helpers shared by every controller.
package render

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdelliBrahim0/DashboardAdmin/dto"
	"github.com/AbdelliBrahim0/DashboardAdmin/logger"
	"github.com/AbdelliBrahim0/DashboardAdmin/model"
	"github.com/AbdelliBrahim0/DashboardAdmin/services"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

const (
	msgInvalidRequest = "Invalid request format"
	msgMissingID      = "Missing id"
	msgInternal       = "Internal server error"
)

// Error writes err as the JSON error body matching its kind. Unknown errors are
// logged and reported as a generic 500.
func Error(c *gin.Context, err error) {
	var (
		verr *services.ValidationError
		cerr *services.ConflictError
		nerr *services.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Error(), Errors: verr.Errors})
	case errors.As(err, &cerr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: cerr.Message})
	case errors.As(err, &nerr):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: nerr.Error()})
	default:
		logger.Nop().Ctx(c.Request.Context()).
			With("method", c.Request.Method, "path", c.Request.URL.Path).
			Error(err, "request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal})
	}
}

// BindRecord decodes the JSON object body of the request. It writes the 400
// response itself and returns false when the body is not an object.
func BindRecord(c *gin.Context) (store.Record, bool) {
	var rec store.Record
	if err := c.ShouldBindJSON(&rec); err != nil || rec == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidRequest})
		return nil, false
	}
	return rec, true
}

// RequireID returns the id query parameter or writes a 400 when it is blank.
func RequireID(c *gin.Context) (string, bool) {
	id := c.Query(model.FieldID)
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingID})
		return "", false
	}
	return id, true
}

// Record builds the response body of one stored record: its fields plus id.
func Record(id string, rec store.Record) gin.H {
	out := make(gin.H, len(rec)+1)
	for k, v := range rec {
		out[k] = v
	}
	out[model.FieldID] = id
	return out
}

// Records renders entries in store order. extra, when set, may add fields to
// each rendered record.
func Records(entries []store.Entry, extra func(id string, rec store.Record, out gin.H)) []gin.H {
	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		h := Record(e.ID, e.Data)
		if extra != nil {
			extra(e.ID, e.Data, h)
		}
		out = append(out, h)
	}
	return out
}
