package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
	"github.com/BruksfildServices01/cleaning-booking/internal/timezone"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// AdminScheduleHandler manages employee availability. Entries for the same
// employee and day may overlap.
type AdminScheduleHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewAdminScheduleHandler(db *gorm.DB, loc *time.Location) *AdminScheduleHandler {
	return &AdminScheduleHandler{db: db, loc: loc}
}

// --------- Requests ---------

type ScheduleRequest struct {
	ID          looseInt `json:"id"`
	EmployeeID  looseInt `json:"employeeId"`
	Date        *string  `json:"date"`
	StartTime   *string  `json:"startTime"`
	EndTime     *string  `json:"endTime"`
	IsAvailable *bool    `json:"isAvailable"`
}

// --------- Handlers ---------

// List accepts ?employeeId=, ?from= and ?to= (dates, inclusive).
func (h *AdminScheduleHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.EmployeeSchedule{})

	employeeID, ok := queryUint(c, "employeeId")
	if !ok {
		httperr.BadRequest(c, "invalid_request")
		return
	}
	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	if raw := c.Query("from"); raw != "" {
		from, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date")
			return
		}
		q = q.Where("date >= ?", from)
	}
	if raw := c.Query("to"); raw != "" {
		to, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date")
			return
		}
		q = q.Where("date < ?", to.AddDate(0, 0, 1))
	}

	var out []models.EmployeeSchedule
	if err := q.Order("date ASC, start_time ASC").Find(&out).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AdminScheduleHandler) Create(c *gin.Context) {
	var req ScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	switch {
	case req.EmployeeID.Uint() == 0:
		httperr.Respond(c, httperr.ErrMissingField("employeeId"))
		return
	case req.Date == nil || strings.TrimSpace(*req.Date) == "":
		httperr.Respond(c, httperr.ErrMissingField("date"))
		return
	case req.StartTime == nil || *req.StartTime == "":
		httperr.Respond(c, httperr.ErrMissingField("startTime"))
		return
	case req.EndTime == nil || *req.EndTime == "":
		httperr.Respond(c, httperr.ErrMissingField("endTime"))
		return
	}

	entry := models.EmployeeSchedule{IsAvailable: true}
	if !h.apply(c, &entry, &req) {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Omit(clause.Associations).
		Create(&entry).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *AdminScheduleHandler) Update(c *gin.Context) {
	var req ScheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	id, ok := targetID(c, req.ID)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var entry models.EmployeeSchedule
	if err := h.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		respondDB(c, err, "schedule_not_found")
		return
	}

	if !h.apply(c, &entry, &req) {
		return
	}

	if err := h.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(&entry).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *AdminScheduleHandler) Delete(c *gin.Context) {
	id, ok := deleteTargetID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.EmployeeSchedule{}, id)
	if res.Error != nil {
		httperr.Respond(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "schedule_not_found")
		return
	}
	httpresp.Success(c)
}

// apply validates and copies the fields present in req onto entry.
func (h *AdminScheduleHandler) apply(c *gin.Context, entry *models.EmployeeSchedule, req *ScheduleRequest) bool {
	if req.EmployeeID.Set {
		if err := h.checkEmployee(c, req.EmployeeID.Uint()); err != nil {
			httperr.Respond(c, err)
			return false
		}
		entry.EmployeeID = req.EmployeeID.Uint()
	}

	if req.Date != nil {
		d, err := timezone.ParseDate(*req.Date, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date")
			return false
		}
		d = d.In(h.loc)
		entry.Date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, h.loc)
	}

	if req.StartTime != nil {
		if !clockPattern.MatchString(*req.StartTime) {
			httperr.BadRequest(c, "invalid_time")
			return false
		}
		entry.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !clockPattern.MatchString(*req.EndTime) {
			httperr.BadRequest(c, "invalid_time")
			return false
		}
		entry.EndTime = *req.EndTime
	}
	// HH:MM compares correctly as text
	if entry.EndTime <= entry.StartTime {
		httperr.BadRequest(c, "invalid_time")
		return false
	}

	if req.IsAvailable != nil {
		entry.IsAvailable = *req.IsAvailable
	}
	return true
}

func (h *AdminScheduleHandler) checkEmployee(c *gin.Context, id uint) error {
	var u models.User
	if err := h.db.WithContext(c.Request.Context()).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("employee_not_found")
		}
		return err
	}
	if user.Role(u.RoleID) != user.RoleEmployee {
		return httperr.ErrBusiness("invalid_employee")
	}
	return nil
}
