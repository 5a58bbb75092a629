package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/student-portal-api/internal/service"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
	"github.com/campusworks/student-portal-api/pkg/response"
)

// AccountHandler exposes account creation and login.
type AccountHandler struct {
	accounts *service.AccountService
}

// NewAccountHandler constructs AccountHandler.
func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// CreateAccount godoc
// @Summary Create an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body service.CreateAccountRequest true "Account payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /create_account [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req service.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.ErrMissingFields)
		return
	}
	if err := h.accounts.CreateAccount(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Account created successfully")
}

// Login godoc
// @Summary Log in
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body service.LoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.ErrInvalidUsername)
		return
	}
	role, err := h.accounts.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	// The legacy success body carries the stored role and no message field.
	response.Raw(c, http.StatusOK, gin.H{"success": true, "role": role})
}
