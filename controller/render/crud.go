package render

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdelliBrahim0/DashboardAdmin/model"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

// CRUD is what the generic entity handlers need from a service.
type CRUD interface {
	List(ctx context.Context) ([]store.Entry, error)
	Get(ctx context.Context, id string) (store.Record, error)
	Create(ctx context.Context, payload store.Record) (string, store.Record, error)
	Update(ctx context.Context, id string, payload store.Record) (store.Record, error)
	Delete(ctx context.Context, id string) error
}

// GetOrList answers GET with the record named by ?id= or, without it, with every
// record of the collection.
func GetOrList(c *gin.Context, svc CRUD) {
	if id := c.Query(model.FieldID); id != "" {
		rec, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			Error(c, err)
			return
		}
		c.JSON(http.StatusOK, Record(id, rec))
		return
	}

	entries, err := svc.List(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, Records(entries, nil))
}

func Create(c *gin.Context, svc CRUD) {
	payload, ok := BindRecord(c)
	if !ok {
		return
	}
	id, rec, err := svc.Create(c.Request.Context(), payload)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, Record(id, rec))
}

func Update(c *gin.Context, svc CRUD) {
	id, ok := RequireID(c)
	if !ok {
		return
	}
	payload, ok := BindRecord(c)
	if !ok {
		return
	}
	rec, err := svc.Update(c.Request.Context(), id, payload)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, Record(id, rec))
}

// Delete removes the record named by ?id= and answers with body.
func Delete(c *gin.Context, svc CRUD, body gin.H) {
	id, ok := RequireID(c)
	if !ok {
		return
	}
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
