package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/office-manager/internal/errs"
	"github.com/psds-microservice/office-manager/internal/service"
)

// AuthHandler backs the dashboard login gate. Passwords are compared as stored.
type AuthHandler struct {
	users service.UserServicer
	log   *slog.Logger
}

func NewAuthHandler(users service.UserServicer, log *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, log: log}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.log, err)
		return
	}
	user, err := h.users.FindByCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if user == nil {
		h.log.Info("login rejected", "username", req.Username)
		writeError(c, h.log, errs.ErrInvalidCredentials)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": user.Username, "role": user.Role})
}
