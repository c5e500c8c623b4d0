package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-ddd-user-registry/internal/application"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-user-registry/pkg/response"
	"github.com/oksasatya/go-ddd-user-registry/pkg/validation"
)

// UserHandler exposes the user use cases over HTTP.
type UserHandler struct {
	Register *userapp.UserRegisterService
	Get      *userapp.UserGetService
	GetAll   *userapp.UserGetAllService
	Update   *userapp.UserUpdateService
	Delete   *userapp.UserDeleteService
	Search   *userapp.UserSearchService
	Logger   *logrus.Logger
}

// Name bounds mirror valueobject.UserName so bad input gets a field message
// before the use case runs.
type userPostRequest struct {
	Name string `json:"name" binding:"required,min=3,max=19"`
}

type userPatchRequest struct {
	ID    string  `json:"id" binding:"required"`
	Name  *string `json:"name" binding:"omitempty,min=3,max=19"`
	Email *string `json:"email" binding:"omitempty,email,max=254"`
}

func (h *UserHandler) PostUser(c *gin.Context) {
	var req userPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	out, err := h.Register.Handle(c.Request.Context(), userapp.UserRegisterCommand{Name: req.Name})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, "user registered", nil)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.GetAll.Handle(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, users, "users", map[string]any{"count": len(users)})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	out, err := h.Get.Handle(c.Request.Context(), userapp.UserGetCommand{ID: c.Query("id")})
	if err != nil {
		h.fail(c, err)
		return
	}
	if out == nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, out, "user", nil)
}

func (h *UserHandler) PatchUser(c *gin.Context) {
	var req userPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	out, err := h.Update.Handle(c.Request.Context(), userapp.UserUpdateCommand{ID: req.ID, Name: req.Name, Email: req.Email})
	if err != nil {
		h.fail(c, err)
		return
	}
	if out == nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, out, "user updated", nil)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	out, err := h.Delete.Handle(c.Request.Context(), userapp.UserDeleteCommand{ID: c.Query("id")})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "user deleted", nil)
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Search.Handle(c.Request.Context(), userapp.UserSearchCommand{Query: c.Query("q"), Size: size})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

func (h *UserHandler) fail(c *gin.Context, err error) {
	var verr *valueobject.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{verr.Field: verr.Reason})
	case errors.Is(err, userapp.ErrDuplicateUser):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, userapp.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("user request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
