package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/festivalhub/festivalhub-api/internal/api/handler/v1/request"
	"github.com/festivalhub/festivalhub-api/internal/api/handler/v1/response"
	"github.com/festivalhub/festivalhub-api/internal/domain"
	"github.com/festivalhub/festivalhub-api/internal/pkg/jwthelper"
	"github.com/festivalhub/festivalhub-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	signingKey []byte
	svc        AuthService
}

func NewAuthHandler(signingKey string, svc AuthService) *AuthHandler {
	return &AuthHandler{
		signingKey: []byte(signingKey),
		svc:        svc,
	}
}

// HandleSignup godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body request.SignupRequest true "request body"
// @Success      201 {object} response.Body{data=response.AuthResponse}
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	req := request.SignupRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		University: req.University,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken(h.signingKey, user, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("HandleSignup -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderCreated(ctx, "회원가입이 완료되었습니다.", response.AuthResponse{
		Token: token,
		User:  user,
	})
}

// HandleLogin godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body request.LoginRequest true "request body"
// @Success      200 {object} response.Body{data=response.AuthResponse}
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials())
			return
		}

		err = fmt.Errorf("HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken(h.signingKey, user, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, response.AuthResponse{
		Token: token,
		User:  user,
	})
}
