package handler

import (
	"encoding/json"
	"errors"
	"go-auth-api/common"
	"go-auth-api/model"
	"go-auth-api/service"
	"net/http"
)

// UserHandler exposes the account lifecycle over HTTP. Every method
// returns *common.AppError and is mounted through ErrorHandlingMiddleware.
type UserHandler struct {
	userService *service.UserService
	authGuard   *AuthMiddleware
}

func NewUserHandler(userService *service.UserService, authGuard *AuthMiddleware) *UserHandler {
	return &UserHandler{userService: userService, authGuard: authGuard}
}

type apiResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload apiResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Register godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      model.RegisterRequest  true  "registration payload"
// @Success      201      {object}  model.TokenPair
// @Failure      409      {object}  common.AppError
// @Router       /users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	req := &model.RegisterRequest{}
	if appErr := common.ValidateAndDecode(r, req); appErr != nil {
		return appErr
	}

	exists, err := h.userService.CheckEmailExists(req.Email)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error checking email", err)
	}
	if exists {
		return common.NewAppError(http.StatusConflict, "Email already registered", common.ErrEmailExists)
	}

	pair, err := h.userService.Register(req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error creating user", err)
	}

	writeJSON(w, http.StatusCreated, apiResponse{Message: "Register success", Data: pair})
	return nil
}

// Login godoc
// @Summary      Authenticate with email and password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      model.LoginRequest  true  "login payload"
// @Success      200      {object}  model.TokenPair
// @Failure      401      {object}  common.AppError
// @Failure      404      {object}  common.AppError
// @Router       /users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	req := &model.LoginRequest{}
	if appErr := common.ValidateAndDecode(r, req); appErr != nil {
		return appErr
	}

	user, err := h.userService.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Error looking up user", err)
	}

	correct, err := h.userService.CheckPasswordCorrect(req.Email, req.Password)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error checking password", err)
	}
	if !correct {
		return common.NewAppError(http.StatusUnauthorized, "Incorrect email or password", common.ErrIncorrectPassword)
	}

	pair, err := h.userService.Login(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error issuing tokens", err)
	}

	writeJSON(w, http.StatusOK, apiResponse{Message: "Login success", Data: pair})
	return nil
}

// Logout godoc
// @Summary      Revoke a refresh token
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      model.LogoutRequest  true  "refresh token to revoke"
// @Success      200      {object}  map[string]string
// @Failure      401      {object}  common.AppError
// @Router       /users/logout [post]
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	req := &model.LogoutRequest{}
	if appErr := common.ValidateAndDecode(r, req); appErr != nil {
		return appErr
	}

	if _, appErr := h.authGuard.VerifyRefreshToken(req.RefreshToken); appErr != nil {
		return appErr
	}

	if err := h.userService.Logout(req.RefreshToken); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error revoking token", err)
	}

	writeJSON(w, http.StatusOK, apiResponse{Message: "Logout success"})
	return nil
}

// VerifyEmail godoc
// @Summary      Confirm email verification
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      model.VerifyEmailRequest  true  "verification token"
// @Success      200      {object}  model.TokenPair
// @Failure      401      {object}  common.AppError
// @Failure      404      {object}  common.AppError
// @Router       /users/verify-email [post]
func (h *UserHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) *common.AppError {
	req := &model.VerifyEmailRequest{}
	if appErr := common.ValidateAndDecode(r, req); appErr != nil {
		return appErr
	}

	claims, appErr := h.authGuard.VerifyEmailToken(req.EmailVerifyToken)
	if appErr != nil {
		return appErr
	}

	user, err := h.userService.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Error looking up user", err)
	}

	// Already consumed: not an error, the caller's goal is satisfied.
	if user.EmailVerifyToken == "" {
		writeJSON(w, http.StatusOK, apiResponse{Message: "Email already verified"})
		return nil
	}
	// Only the most recently issued verification token is usable.
	if user.EmailVerifyToken != req.EmailVerifyToken {
		return common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", common.ErrInvalidToken)
	}

	pair, err := h.userService.VerifyEmail(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error verifying email", err)
	}

	writeJSON(w, http.StatusOK, apiResponse{Message: "Email verified", Data: pair})
	return nil
}

// ResendVerifyEmail godoc
// @Summary      Resend the email-verification token
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  common.AppError
// @Router       /users/resend-verify-email [post]
func (h *UserHandler) ResendVerifyEmail(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", common.ErrInvalidToken)
	}

	user, err := h.userService.FindByID(userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Error looking up user", err)
	}

	if user.EmailVerifyToken == "" || user.Verify == model.Verified {
		writeJSON(w, http.StatusOK, apiResponse{Message: "Email already verified"})
		return nil
	}

	if _, err := h.userService.ResendVerifyEmail(userID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error resending verification email", err)
	}

	writeJSON(w, http.StatusOK, apiResponse{Message: "Verification email resent"})
	return nil
}

// ForgotPassword godoc
// @Summary      Start a password reset
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      model.ForgotPasswordRequest  true  "account email"
// @Success      200      {object}  map[string]string
// @Failure      404      {object}  common.AppError
// @Router       /users/forgot-password [post]
func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	req := &model.ForgotPasswordRequest{}
	if appErr := common.ValidateAndDecode(r, req); appErr != nil {
		return appErr
	}

	user, err := h.userService.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Error looking up user", err)
	}

	token, err := h.userService.ForgotPassword(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error issuing reset token", err)
	}

	// Email delivery is out of scope; the token rides in the response the
	// way the delivery layer would receive it.
	writeJSON(w, http.StatusOK, apiResponse{
		Message: "Check your email for the reset link",
		Data:    map[string]string{"forgot_password_token": token},
	})
	return nil
}

// VerifyForgotPassword godoc
// @Summary      Check a password-reset token without consuming it
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      model.VerifyForgotPasswordRequest  true  "reset token"
// @Success      200      {object}  map[string]string
// @Failure      401      {object}  common.AppError
// @Router       /users/verify-forgot-password [post]
func (h *UserHandler) VerifyForgotPassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	req := &model.VerifyForgotPasswordRequest{}
	if appErr := common.ValidateAndDecode(r, req); appErr != nil {
		return appErr
	}

	if _, appErr := h.authGuard.VerifyForgotPasswordToken(req.ForgotPasswordToken); appErr != nil {
		return appErr
	}

	writeJSON(w, http.StatusOK, apiResponse{Message: "Forgot password token is valid"})
	return nil
}

// ResetPassword godoc
// @Summary      Consume a reset token and set a new password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      model.ResetPasswordRequest  true  "reset payload"
// @Success      200      {object}  map[string]string
// @Failure      401      {object}  common.AppError
// @Router       /users/reset-password [post]
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	req := &model.ResetPasswordRequest{}
	if appErr := common.ValidateAndDecode(r, req); appErr != nil {
		return appErr
	}

	claims, appErr := h.authGuard.VerifyForgotPasswordToken(req.ForgotPasswordToken)
	if appErr != nil {
		return appErr
	}

	if err := h.userService.ResetPassword(claims.UserID, req.Password); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Error resetting password", err)
	}

	writeJSON(w, http.StatusOK, apiResponse{Message: "Reset password success"})
	return nil
}

// GetProfile godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Profile
// @Failure      404  {object}  common.AppError
// @Router       /users/get-profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", common.ErrInvalidToken)
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Error loading profile", err)
	}

	writeJSON(w, http.StatusOK, apiResponse{Message: "Get profile success", Data: profile})
	return nil
}
