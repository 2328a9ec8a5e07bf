package handler

import (
	"currency-wallet/internal/adapter/http/dto"
	"currency-wallet/internal/core/ports"
	"currency-wallet/pkg/apperror"
	"currency-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the token-issuing endpoint.
type AuthHandler struct {
	authSvc  ports.AuthService
	tokenSvc ports.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService, tokenSvc ports.TokenService) *AuthHandler {
	return &AuthHandler{
		authSvc:  authSvc,
		tokenSvc: tokenSvc,
	}
}

// Token handles POST /token. It ingests a form-encoded username/password
// pair and returns a bearer token when the credentials are valid.
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	user, err := h.authSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, _, err := h.tokenSvc.Generate(user.UserID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
