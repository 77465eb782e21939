package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/SscSPs/comandas_backend/internal/audit"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/SscSPs/comandas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// authHandler handles authentication related requests.
type authHandler struct {
	authService   portssvc.AuthSvcFacade
	googleService portssvc.GoogleAuthSvcFacade
	secureCookies bool
}

func newAuthHandler(as portssvc.AuthSvcFacade, gs portssvc.GoogleAuthSvcFacade, secureCookies bool) *authHandler {
	return &authHandler{authService: as, googleService: gs, secureCookies: secureCookies}
}

// registerAuthRoutes sets up the public authentication routes and the authenticated ones
// (logout, me) under protected. The Google routes exist only when googleEnabled is set.
func registerAuthRoutes(public, protected *gin.RouterGroup, h *authHandler, loginLimit gin.HandlerFunc, recorder audit.Recorder, googleEnabled bool) {
	auth := public.Group("/auth")
	{
		loginAudit := audit.Track(audit.Descriptor{Action: audit.ActionLogin, Entity: "personal"}, recorder, nil)
		auth.POST("/login", loginLimit, loginAudit, h.login)
		if googleEnabled {
			auth.GET("/google/login", h.googleLoginURL)
			auth.GET("/google/callback", loginLimit, loginAudit, h.googleCallback)
			auth.POST("/google/id-token", loginLimit, loginAudit, h.googleIDToken)
		}
	}

	authed := protected.Group("/auth")
	{
		authed.POST("/logout", audit.Track(audit.Descriptor{Action: audit.ActionLogout, Entity: "personal"}, recorder, nil), h.logout)
		authed.GET("/me", h.me)
	}
}

// login godoc
// @Summary Login with email and password
// @Description Authenticates an active member of the staff and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "login")
		return
	}
	h.loggedIn(c, resp)
}

func (h *authHandler) loggedIn(c *gin.Context, resp *dto.LoginResponse) {
	audit.SetActor(c, resp.Personal.PersonalID)
	audit.SetEntityID(c, resp.Personal.PersonalID)
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Logout
// @Description Revokes the bearer token used for this request.
// @Tags auth
// @Produce json
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := h.authService.Logout(c.Request.Context(), identity); err != nil {
		respondError(c, err, "logout")
		return
	}
	audit.SetEntityID(c, identity.PersonalID)
	c.Status(http.StatusNoContent)
}

// me godoc
// @Summary Current identity
// @Tags auth
// @Produce json
// @Success 200 {object} domain.Identity
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, identity)
}

// googleLoginURL godoc
// @Summary Google sign-in URL
// @Description Returns the Google consent URL. The state is also set as a cookie checked by the callback.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.GoogleLoginURLResponse
// @Failure 404 {object} ErrorResponse "Google sign-in not configured"
// @Router /auth/google/login [get]
func (h *authHandler) googleLoginURL(c *gin.Context) {
	url, state, err := h.googleService.LoginURL(c.Request.Context())
	if err != nil {
		respondError(c, err, "build google login url")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, dto.GoogleLoginURLResponse{URL: url, State: state})
}

// googleCallback godoc
// @Summary Google sign-in callback
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State returned by the login URL"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *authHandler) googleCallback(c *gin.Context) {
	state := c.Query("state")
	cookie, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(state), []byte(cookie)) != 1 {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)

	resp, err := h.googleService.LoginWithCode(c.Request.Context(), c.Query("code"))
	if err != nil {
		respondError(c, err, "login with google")
		return
	}
	h.loggedIn(c, resp)
}

// googleIDToken godoc
// @Summary Login with a Google ID token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.GoogleIDTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/id-token [post]
func (h *authHandler) googleIDToken(c *gin.Context) {
	var req dto.GoogleIDTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.googleService.LoginWithIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err, "login with google")
		return
	}
	h.loggedIn(c, resp)
}
