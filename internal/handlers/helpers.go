package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

// --------- Request helpers ---------

// paramID reads a positive numeric path parameter or answers invalid_id.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return false
	}
	return true
}

type idRequest struct {
	ID looseInt `json:"id"`
}

// targetID picks the row id of an admin mutation: the :id path parameter
// when the route has one, otherwise the id field of the body.
func targetID(c *gin.Context, bodyID looseInt) (uint, bool) {
	if c.Param("id") != "" {
		return paramID(c, "id")
	}
	if id := bodyID.Uint(); id > 0 {
		return id, true
	}
	httperr.Respond(c, httperr.ErrMissingField("id"))
	return 0, false
}

// deleteTargetID is targetID for DELETE, whose body is only read when the
// path carries no id.
func deleteTargetID(c *gin.Context) (uint, bool) {
	if c.Param("id") != "" {
		return paramID(c, "id")
	}
	var req idRequest
	if !bindJSON(c, &req) {
		return 0, false
	}
	return targetID(c, req.ID)
}

// queryUint returns nil for an absent parameter and ok=false for a bad one.
func queryUint(c *gin.Context, name string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	id := uint(v)
	return &id, true
}

// looseInt accepts 12, "12", "" and null. Web forms send ids as strings.
type looseInt struct {
	Value int64
	Set   bool
}

func (l *looseInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*l = looseInt{}
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*l = looseInt{Value: v, Set: true}
	return nil
}

// Uint returns 0 when the value is absent or negative.
func (l looseInt) Uint() uint {
	if !l.Set || l.Value < 0 {
		return 0
	}
	return uint(l.Value)
}

func (l looseInt) UintPtr() *uint {
	if !l.Set || l.Value <= 0 {
		return nil
	}
	v := uint(l.Value)
	return &v
}

func (l looseInt) IntPtr() *int {
	if !l.Set {
		return nil
	}
	v := int(l.Value)
	return &v
}

// --------- Persistence helpers ---------

// respondDB answers 404 with notFoundCode for a missing row and lets
// httperr.Respond log anything else.
func respondDB(c *gin.Context, err error, notFoundCode string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, notFoundCode)
		return
	}
	httperr.Respond(c, err)
}
