package auth

import (
	"errors"
	"net/http"
	"strings"

	"competition-registration-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const studentIDKey = "student_id"

var (
	errMissingHeader = errors.New("authorization header is required")
	errNotBearer     = errors.New("authorization header must use the Bearer scheme")
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth resolves the bearer token to a student id. The id is stored on the gin
// context for handlers and on the request context for logging.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		studentID, err := m.authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		c.Set(studentIDKey, studentID)
		c.Request = c.Request.WithContext(logger.ContextWithStudent(c.Request.Context(), studentID.String()))
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(token string) (uuid.UUID, error) {
	claims, err := m.service.ValidateJWT(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.StudentUUID()
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingHeader
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", errNotBearer
	}
	return token, nil
}

// GetStudentID returns the authenticated student set by RequireAuth
func GetStudentID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(studentIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
