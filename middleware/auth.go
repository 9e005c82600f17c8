package middleware

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"zen-api/config"
	"zen-api/database"
	"zen-api/models"
	"zen-api/utils"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	// AuthCookieName is the httpOnly cookie carrying the JWT
	AuthCookieName = "auth_token"

	// UserCacheKeyPrefix prefixes Redis keys for resolved users
	UserCacheKeyPrefix = "user_session:"

	// UserCacheDuration bounds how stale a cached user may be
	UserCacheDuration = 5 * time.Minute
)

var ErrUnauthorized = errors.New("unauthorized")

// Claims carried in the session token
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for the given user
func GenerateToken(userID uint, lifetime time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// parseToken validates a JWT and returns its claims
func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// tokenFromRequest extracts the JWT from the auth cookie or the Authorization header
func tokenFromRequest(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie, nil
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), nil
	}
	return "", ErrUnauthorized
}

// GetUserFromRequest resolves the authenticated user for the request. On failure
// it writes the 401 response itself; callers only need to return on error.
func GetUserFromRequest(c *gin.Context) (models.User, error) {
	var user models.User

	tokenString, err := tokenFromRequest(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "No token provided")
		c.Abort()
		return user, err
	}

	claims, err := parseToken(tokenString)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		c.Abort()
		return user, err
	}

	if cached, ok := getCachedUser(c, claims.UserID); ok {
		return cached, nil
	}

	if err := database.DB.Preload("Rank").First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusUnauthorized, "User not found")
		} else {
			log.Printf("Failed to resolve user %d: %v", claims.UserID, err)
			response.Error(c, http.StatusInternalServerError, "Failed to resolve user")
		}
		c.Abort()
		return user, ErrUnauthorized
	}

	cacheUser(c, user)
	return user, nil
}

// getCachedUser looks up the Redis user cache; a miss or a broken cache falls
// through to the database
func getCachedUser(c *gin.Context, userID uint) (models.User, bool) {
	var user models.User
	if database.REDIS == nil {
		return user, false
	}
	data, err := database.REDIS.Get(c.Request.Context(), cacheKey(userID)).Result()
	if err != nil || data == "" {
		return user, false
	}
	if err := utils.UnmarshalJSON([]byte(data), &user); err != nil {
		return user, false
	}
	return user, true
}

func cacheUser(c *gin.Context, user models.User) {
	if database.REDIS == nil {
		return
	}
	data, err := utils.MarshalJSON(user)
	if err != nil {
		return
	}
	if err := database.REDIS.Set(c.Request.Context(), cacheKey(user.ID), data, UserCacheDuration).Err(); err != nil {
		log.Printf("Failed to cache user %d: %v", user.ID, err)
	}
}

// InvalidateUserCache drops the cached copy of a user after a profile or role change
func InvalidateUserCache(c *gin.Context, userID uint) {
	if database.REDIS == nil {
		return
	}
	if err := database.REDIS.Del(c.Request.Context(), cacheKey(userID)).Err(); err != nil {
		log.Printf("Failed to invalidate user cache for %d: %v", userID, err)
	}
}

func cacheKey(userID uint) string {
	return UserCacheKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}
