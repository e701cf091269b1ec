package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
	"github.com/BruksfildServices01/cleaning-booking/internal/validators"
)

type AdminUserHandler struct {
	db *gorm.DB
}

func NewAdminUserHandler(db *gorm.DB) *AdminUserHandler {
	return &AdminUserHandler{db: db}
}

// --------- Requests ---------

type AdminCreateUserRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Phone    string   `json:"phone"`
	RoleID   looseInt `json:"roleId"`
}

type AdminUpdateUserRequest struct {
	ID     looseInt `json:"id"`
	Name   *string  `json:"name"`
	Email  *string  `json:"email"`
	Phone  *string  `json:"phone"`
	RoleID looseInt `json:"roleId"`
}

type adminUserView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	RoleID    uint      `json:"roleId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type employeeView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toAdminUserView(u *models.User) adminUserView {
	return adminUserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		RoleID:    u.RoleID,
		Role:      user.Role(u.RoleID).Name(),
		CreatedAt: u.CreatedAt,
	}
}

// --------- Handlers ---------

func (h *AdminUserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&users).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]adminUserView, 0, len(users))
	for i := range users {
		out = append(out, toAdminUserView(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminUserHandler) Employees(c *gin.Context) {
	var out []employeeView
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Select("id, name").
		Where("role_id = ?", user.RoleEmployee.ID()).
		Order("name ASC").
		Scan(&out).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AdminUserHandler) Roles(c *gin.Context) {
	var roles []models.Role
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&roles).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, roles)
}

func (h *AdminUserHandler) Create(c *gin.Context) {
	var req AdminCreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	email := validators.NormalizeEmail(req.Email)
	switch {
	case strings.TrimSpace(req.Name) == "":
		httperr.Respond(c, httperr.ErrMissingField("name"))
		return
	case email == "":
		httperr.Respond(c, httperr.ErrMissingField("email"))
		return
	case req.Password == "":
		httperr.Respond(c, httperr.ErrMissingField("password"))
		return
	case !req.RoleID.Set:
		httperr.Respond(c, httperr.ErrMissingField("roleId"))
		return
	}

	role := user.Role(req.RoleID.Uint())
	if !role.Valid() {
		httperr.BadRequest(c, "invalid_role")
		return
	}
	if !validators.IsEmail(email) {
		httperr.BadRequest(c, "invalid_email")
		return
	}
	name, err := validators.Name(req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if err := validators.Password(req.Password); err != nil {
		httperr.Respond(c, err)
		return
	}
	if h.emailTaken(c, email, 0) {
		httperr.BadRequest(c, "email_taken")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(req.Phone),
		RoleID:       role.ID(),
	}
	if err := h.db.WithContext(c.Request.Context()).
		Omit(clause.Associations).
		Create(&u).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAdminUserView(&u))
}

func (h *AdminUserHandler) Update(c *gin.Context) {
	var req AdminUpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	id, ok := targetID(c, req.ID)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var u models.User
	if err := h.db.WithContext(ctx).First(&u, id).Error; err != nil {
		respondDB(c, err, "user_not_found")
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		name, err := validators.Name(*req.Name)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		fields["name"] = name
	}
	if req.Email != nil {
		email := validators.NormalizeEmail(*req.Email)
		if !validators.IsEmail(email) {
			httperr.BadRequest(c, "invalid_email")
			return
		}
		if h.emailTaken(c, email, u.ID) {
			httperr.BadRequest(c, "email_taken")
			return
		}
		fields["email"] = email
	}
	if req.Phone != nil {
		fields["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.RoleID.Set {
		role := user.Role(req.RoleID.Uint())
		if !role.Valid() {
			httperr.BadRequest(c, "invalid_role")
			return
		}
		fields["role_id"] = role.ID()
	}

	if len(fields) > 0 {
		if err := h.db.WithContext(ctx).
			Model(&models.User{ID: u.ID}).
			Updates(fields).Error; err != nil {
			httperr.Respond(c, err)
			return
		}
		if err := h.db.WithContext(ctx).First(&u, u.ID).Error; err != nil {
			httperr.Respond(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, toAdminUserView(&u))
}

func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, ok := deleteTargetID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.User{}, id)
	if res.Error != nil {
		httperr.Respond(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found")
		return
	}
	httpresp.Success(c)
}

// emailTaken ignores the row with id except, so a user can keep its address.
func (h *AdminUserHandler) emailTaken(c *gin.Context, email string, except uint) bool {
	var count int64
	h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("email = ? AND id <> ?", email, except).
		Count(&count)
	return count > 0
}
