package handlers

import (
	"context"
	"errors"
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/devconnector/internal/application"
	"github.com/oksasatya/devconnector/pkg/helpers"
	"github.com/oksasatya/devconnector/pkg/response"
	"github.com/oksasatya/devconnector/pkg/validation"
)

// registrations counts outcomes; exposed on /api/debug/vars.
var registrations = expvar.NewMap("registrations")

// Registrar is the registration workflow as seen by HTTP.
type Registrar interface {
	Register(ctx context.Context, in userapp.RegisterInput) (*userapp.RegisterResult, error)
}

type UserHandler struct {
	Svc    Registrar
	Logger *logrus.Logger
}

func NewUserHandler(svc Registrar, logger *logrus.Logger) *UserHandler {
	if logger == nil {
		logger = helpers.DiscardLogger()
	}
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		registrations.Add("invalid", 1)
		details := validation.ToDetails(err)
		response.Errors(c, http.StatusBadRequest, response.ErrorItem{Msg: "Invalid JSON payload.", Param: "payload", Location: "body"})
		h.entry(c).WithField("details", details).Debug("register: bad payload")
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), userapp.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})

	var verr *userapp.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		registrations.Add("invalid", 1)
		items := make([]response.ErrorItem, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			items = append(items, response.ErrorItem{Msg: f.Message, Param: f.Field, Location: "body"})
		}
		response.Errors(c, http.StatusBadRequest, items...)
		return
	case errors.Is(err, userapp.ErrUserExists):
		registrations.Add("duplicate", 1)
		response.Errors(c, http.StatusBadRequest, response.ErrorItem{Msg: "User already exists"})
		return
	default:
		registrations.Add("failed", 1)
		h.entry(c).WithError(err).Error("register failed")
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		return
	}

	registrations.Add("created", 1)
	if res.User != nil {
		c.JSON(http.StatusOK, gin.H{
			"id":         res.User.ID,
			"name":       res.User.Name,
			"email":      res.User.Email,
			"avatar":     res.User.AvatarURL,
			"created_at": res.User.CreatedAt,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": res.Token})
}

func (h *UserHandler) entry(c *gin.Context) *logrus.Entry {
	ip := c.GetString("real_ip")
	if ip == "" {
		ip = c.ClientIP()
	}
	return helpers.RequestEntry(h.Logger, c.GetString("request_id"), ip)
}
