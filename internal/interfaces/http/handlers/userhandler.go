package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	listUsersUC      usecases.ListUsersExecutor
	createUserUC     usecases.CreateUserExecutor
	getUserUC        usecases.GetUserExecutor
	updateUserUC     usecases.UpdateUserExecutor
	deactivateUserUC usecases.DeactivateUserExecutor
	logger           logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	listUsersUC usecases.ListUsersExecutor,
	createUserUC usecases.CreateUserExecutor,
	getUserUC usecases.GetUserExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	deactivateUserUC usecases.DeactivateUserExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUC:      listUsersUC,
		createUserUC:     createUserUC,
		getUserUC:        getUserUC,
		updateUserUC:     updateUserUC,
		deactivateUserUC: deactivateUserUC,
		logger:           log,
	}
}

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email" example:"agent@example.com"`
	Password  string `json:"password" binding:"required,min=6" example:"secret123"`
	FirstName string `json:"firstName" binding:"required" example:"Sam"`
	LastName  string `json:"lastName" binding:"required" example:"Agent"`
	Role      string `json:"role" binding:"omitempty,oneof=ADMIN USER" enums:"ADMIN,USER"`
}

func (r *CreateUserRequest) ToCommand(actor authorization.Actor) usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Actor:     actor,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      r.Role,
	}
}

// UpdateUserRequest holds a partial update; absent fields stay unchanged.
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
	Role      *string `json:"role" binding:"omitempty,oneof=ADMIN USER" enums:"ADMIN,USER"`
	IsActive  *bool   `json:"isActive"`
}

func (r *UpdateUserRequest) ToCommand(actor authorization.Actor, userID uint) usecases.UpdateUserCommand {
	return usecases.UpdateUserCommand{
		Actor:     actor,
		UserID:    userID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  r.Password,
		Role:      r.Role,
		IsActive:  r.IsActive,
	}
}

// ListUsers handles GET /users
//
//	@Summary		List users
//	@Description	List every account with ticket counts (admin only)
//	@Tags			users
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse{data=[]userdto.UserWithCountsResponse}	"Users"
//	@Failure		401	{object}	utils.APIResponse											"Unauthorized"
//	@Failure		403	{object}	utils.APIResponse											"Forbidden"
//	@Router			/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateUser handles POST /users
//
//	@Summary		Create user
//	@Description	Create an account with an optional role (admin only)
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			user	body		CreateUserRequest								true	"User data"
//	@Success		201		{object}	utils.APIResponse{data=userdto.UserResponse}	"User created"
//	@Failure		400		{object}	utils.APIResponse								"Validation error"
//	@Failure		403		{object}	utils.APIResponse								"Forbidden"
//	@Failure		409		{object}	utils.APIResponse								"Email already registered"
//	@Router			/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// GetUser handles GET /users/:id
//
//	@Summary		Get user
//	@Description	Get an account; users may only read their own
//	@Tags			users
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path		int														true	"User ID"
//	@Success		200	{object}	utils.APIResponse{data=userdto.UserWithCountsResponse}	"User"
//	@Failure		403	{object}	utils.APIResponse										"Forbidden"
//	@Failure		404	{object}	utils.APIResponse										"User not found"
//	@Router			/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{Actor: actor, UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateUser handles PATCH /users/:id
//
//	@Summary		Update user
//	@Description	Update a profile; role and isActive are only applied for admins
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id		path		int												true	"User ID"
//	@Param			user	body		UpdateUserRequest								true	"Fields to change"
//	@Success		200		{object}	utils.APIResponse{data=userdto.UserResponse}	"User updated"
//	@Failure		400		{object}	utils.APIResponse								"Validation error"
//	@Failure		403		{object}	utils.APIResponse								"Forbidden"
//	@Failure		404		{object}	utils.APIResponse								"User not found"
//	@Failure		409		{object}	utils.APIResponse								"Email already in use"
//	@Router			/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user",
			"user_id", userID,
			"error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	h.logger.Infow("update user request",
		"current_user_id", actor.UserID,
		constants.ContextKeyUserRole, actor.Role,
		"target_user_id", userID)

	result, err := h.updateUserUC.Execute(c.Request.Context(), req.ToCommand(actor, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeactivateUser handles DELETE /users/:id
//
//	@Summary		Deactivate user
//	@Description	Disable an account without deleting its data (admin only)
//	@Tags			users
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path		int												true	"User ID"
//	@Success		200	{object}	utils.APIResponse{data=userdto.UserResponse}	"User deactivated"
//	@Failure		400	{object}	utils.APIResponse								"Cannot deactivate yourself"
//	@Failure		403	{object}	utils.APIResponse								"Forbidden"
//	@Failure		404	{object}	utils.APIResponse								"User not found"
//	@Router			/users/{id} [delete]
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deactivateUserUC.Execute(c.Request.Context(), usecases.DeactivateUserCommand{Actor: actor, UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deactivated successfully", result)
}
