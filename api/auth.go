package api

import (
	"butce/config"
	"butce/database"
	"butce/middleware"
	"butce/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles registration, login and profile.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates the handler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Email    string `json:"email" binding:"omitempty,email"`
	Language string `json:"language" binding:"omitempty,oneof=tr en"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates a user account.
// @Summary Register
// @Description Creates a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "account info"
// @Success 200 {object} Response{data=models.User}
// @Failure 400 {object} Response
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		BadRequest(c, "Bu kullanıcı adı zaten alınmış")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Kayıt başarısız"))
		return
	}

	lang := req.Language
	if lang == "" {
		lang = models.LanguageTurkish
	}
	user := models.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		Language: lang,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Kayıt başarısız"))
		return
	}
	SuccessWithMessage(c, "Kayıt başarılı", user)
}

// Login verifies credentials and issues a token.
// @Summary Login
// @Description Verifies credentials and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} Response{data=LoginResponse}
// @Failure 401 {object} Response
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "Kullanıcı adı veya şifre hatalı")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Kullanıcı adı veya şifre hatalı")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Giriş başarısız"))
		return
	}
	Success(c, LoginResponse{Token: token, User: user})
}

// GetProfile returns the authenticated user.
// @Summary Profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User}
// @Failure 401 {object} Response
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Kayıt bulunamadı")
		return
	}
	Success(c, user)
}

type UpdatePushTokenRequest struct {
	PushToken string `json:"push_token" binding:"required"`
}

// UpdatePushToken registers the device push target used by milestone
// notifications.
// @Summary Register push token
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdatePushTokenRequest true "push token"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/auth/push-token [put]
func (h *AuthHandler) UpdatePushToken(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req UpdatePushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}
	if err := database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("push_token", req.PushToken).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Güncelleme başarısız"))
		return
	}
	SuccessWithMessage(c, "Bildirim adresi güncellendi", nil)
}
