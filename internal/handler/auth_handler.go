package handler

import (
	"errors"
	"net/http"

	"learning-app-backend/internal/service"
	"learning-app-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type RegisterRequest struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// CheckServerConnection is a trivial reachability probe for the mobile client
func (h *AuthHandler) CheckServerConnection(c *gin.Context) {
	utils.SuccessResponse(c, "Server is up and running!", nil)
}

// CheckEnabledAccount reports whether the account for an email exists
// and has been confirmed
func (h *AuthHandler) CheckEnabledAccount(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	status, err := h.authService.IsUserEnabled(req.Email)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to check account")
		return
	}

	switch {
	case !status.Found:
		utils.FailureResponse(c, "No user found with the provided email address.")
	case !status.Enabled:
		utils.FailureResponse(c, "User is not enabled")
	default:
		utils.SuccessResponse(c, "User is enabled", nil)
	}
}

// CreateAccount registers a new (or still unconfirmed) account and
// emails a confirmation link
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.authService.Register(req.FirstName, req.LastName, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrAlreadyConfirmed) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Email already confirmed. Please log in.")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	utils.SuccessResponse(c, "User registered successfully. Please check your email for confirmation instructions.", nil)
}

// ConfirmAccount consumes a confirmation token from the emailed link
func (h *AuthHandler) ConfirmAccount(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Token is required")
		return
	}

	if err := h.authService.ConfirmAccount(token); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrExpiredToken):
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid or expired token.")
		case errors.Is(err, service.ErrAlreadyConfirmed):
			utils.ErrorResponse(c, http.StatusBadRequest, "Account already confirmed.")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Account confirmation failed")
		}
		return
	}

	utils.SuccessResponse(c, "Your email is confirmed. All existing tokens were revoked. Thank you for using our service!", nil)
}

// ResendConfirmationEmail re-mints and re-sends a confirmation token
func (h *AuthHandler) ResendConfirmationEmail(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.ResendConfirmationEmail(req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "No user found with the provided email address.")
		case errors.Is(err, service.ErrAlreadyConfirmed):
			utils.ErrorResponse(c, http.StatusBadRequest, "This email is already confirmed. Please log in.")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to resend confirmation email")
		}
		return
	}

	utils.SuccessResponse(c, "Confirmation email resent. Please check your email.", nil)
}

// LoginAccount authenticates a user and returns a fresh bearer token
func (h *AuthHandler) LoginAccount(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Login failed")
		return
	}

	utils.SuccessResponse(c, "Login success", token)
}

// VerifyToken reports claim-level token validity. A negative outcome
// is a success=false envelope, not an error status.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	valid, err := h.authService.VerifyToken(req.Token)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Token verification failed")
		return
	}

	if valid {
		utils.SuccessResponse(c, "Token verification", nil)
		return
	}
	utils.FailureResponse(c, "Token verification")
}

// LogoutAccount revokes the presented token and disables the account
func (h *AuthHandler) LogoutAccount(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.Logout(req.Token); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid token.")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	utils.SuccessResponse(c, "Logout successful", nil)
}
