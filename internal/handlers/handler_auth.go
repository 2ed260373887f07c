package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/rumahamal/ref26-backend/internal/apperrors"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/dto"
	"github.com/rumahamal/ref26-backend/internal/middleware"
	"github.com/rumahamal/ref26-backend/pkg/config"
)

// authHandler handles the realm login/logout/check endpoints.
type authHandler struct {
	authService    portssvc.AuthSvcFacade
	cookieDuration time.Duration
	secureCookies  bool
}

func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService:    as,
		cookieDuration: cfg.SessionDuration,
		secureCookies:  cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService, cfg)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/auth")
	{
		auth.POST("/login", limitMiddleware, h.login) // Apply rate limiting middleware here
		auth.POST("/logout", h.logout)
		auth.GET("/check", h.check)
	}
}

// login godoc
// @Summary Realm login
// @Description Authenticates against one login realm and sets its session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.SimpleResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	realm, ok := domain.ParseRealm(req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid auth type"})
		return
	}

	token, err := h.authService.Login(realm, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Rejected login", slog.String("realm", string(realm)))
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid username or password"})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log in"})
		return
	}

	h.setSessionCookie(c, realm, token, int(h.cookieDuration.Seconds()))
	logger.Info("Login succeeded", slog.String("realm", string(realm)))
	c.JSON(http.StatusOK, dto.SimpleResultResponse{Success: true})
}

// logout godoc
// @Summary Realm logout
// @Description Clears the session cookie of the selected realm.
// @Tags auth
// @Accept json
// @Produce json
// @Param logout body dto.LogoutRequest true "Realm selector"
// @Success 200 {object} dto.SimpleResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	var req dto.LogoutRequest
	_ = c.ShouldBindJSON(&req) // empty body means the default realm

	realm, ok := domain.ParseRealm(req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid auth type"})
		return
	}

	h.setSessionCookie(c, realm, "", -1)
	c.JSON(http.StatusOK, dto.SimpleResultResponse{Success: true})
}

// check godoc
// @Summary Session check
// @Description Reports whether the caller holds a live session for the realm.
// @Tags auth
// @Produce json
// @Param type query string false "Realm selector (validasi or upload)"
// @Success 200 {object} dto.AuthStatusResponse
// @Router /auth/check [get]
func (h *authHandler) check(c *gin.Context) {
	// An unknown realm is simply not authenticated, never an error.
	realm, ok := domain.ParseRealm(c.Query("type"))
	if !ok {
		c.JSON(http.StatusOK, dto.AuthStatusResponse{Authenticated: false})
		return
	}

	token, err := c.Cookie(h.authService.CookieName(realm))
	authenticated := err == nil && h.authService.VerifySession(realm, token)
	c.JSON(http.StatusOK, dto.AuthStatusResponse{Authenticated: authenticated})
}

func (h *authHandler) setSessionCookie(c *gin.Context, realm domain.Realm, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.authService.CookieName(realm), token, maxAge, "/", "", h.secureCookies, true)
}
