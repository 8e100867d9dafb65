package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "helpdesk/internal/application/auth/dto"
	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

var _ = authdto.AuthResponse{} // referenced by swagger annotations

type AuthHandler struct {
	registerUC       usecases.RegisterExecutor
	loginUC          usecases.LoginExecutor
	getCurrentUserUC usecases.GetCurrentUserExecutor
	logger           logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	getCurrentUserUC usecases.GetCurrentUserExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		getCurrentUserUC: getCurrentUserUC,
		logger:           logger,
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password  string `json:"password" binding:"required,min=6" example:"secret123"`
	FirstName string `json:"firstName" binding:"required" example:"Jane"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@crm.com"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// Register handles POST /auth/register
//
//	@Summary		Register a new account
//	@Description	Create a USER account and return it together with a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			account	body		RegisterRequest										true	"Account data"
//	@Success		201		{object}	utils.APIResponse{data=authdto.AuthResponse}	"Account created"
//	@Failure		400		{object}	utils.APIResponse									"Validation error"
//	@Failure		409		{object}	utils.APIResponse									"Email already registered"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Registration successful")
}

// Login handles POST /auth/login
//
//	@Summary		Log in
//	@Description	Exchange email and password for a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest										true	"Credentials"
//	@Success		200			{object}	utils.APIResponse{data=authdto.AuthResponse}	"Logged in"
//	@Failure		400			{object}	utils.APIResponse									"Validation error"
//	@Failure		401			{object}	utils.APIResponse									"Invalid credentials"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Me handles GET /auth/me
//
//	@Summary		Current user
//	@Description	Return the account behind the bearer token
//	@Tags			auth
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse{data=userdto.UserResponse}	"Current user"
//	@Failure		401	{object}	utils.APIResponse								"Unauthorized"
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCurrentUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
