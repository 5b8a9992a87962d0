package handlers

import (
	"errors"
	"net/http"

	"competition-registration-backend/internal/auth"
	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"
	"competition-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegistrationHandler handles HTTP requests for registrations and team rosters
type RegistrationHandler struct {
	engine service.RosterEngineInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(engine service.RosterEngineInterface) *RegistrationHandler {
	return &RegistrationHandler{
		engine: engine,
	}
}

// CreateRegistrationResponse is the saved registration plus what happened to co-member copies
type CreateRegistrationResponse struct {
	Registration *models.Registration      `json:"registration"`
	Report       *service.PropagationReport `json:"report"`
}

// JoinTeamRequest carries the invite code shared by a team captain
type JoinTeamRequest struct {
	InviteCode string `json:"invite_code" binding:"required,len=10" example:"K3Q7XW2M9P"`
}

// CreateRegistration handles POST /events/:eventId/registrations
// @Summary Register for an event
// @Description Register the authenticated student for disciplines of an event. The student captains every team listed and each co-member receives a copy of the team.
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID (UUID)"
// @Param registration body service.CreateRegistrationRequest true "Disciplines to register for"
// @Success 201 {object} CreateRegistrationResponse "Registration saved"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event, discipline or student not found"
// @Failure 409 {object} ErrorResponse "Already registered"
// @Failure 422 {object} ErrorResponse "Team is full"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /events/{eventId}/registrations [post]
func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	var req service.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registration, report, err := h.engine.CreateRegistration(c.Request.Context(), eventID, studentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateRegistrationResponse{Registration: registration, Report: report})
}

// JoinTeam handles POST /teams/join
// @Summary Join a team
// @Description Join the team behind an invite code. Every member's copy of the roster is updated.
// @Tags teams
// @Accept json
// @Produce json
// @Param request body JoinTeamRequest true "Invite code"
// @Success 200 {object} models.Registration "Joined team"
// @Failure 400 {object} ErrorResponse "Invalid request or registration closed"
// @Failure 404 {object} ErrorResponse "Invite code not found"
// @Failure 409 {object} ErrorResponse "Already on a team for this discipline"
// @Failure 422 {object} ErrorResponse "Team is full"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/join [post]
func (h *RegistrationHandler) JoinTeam(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	var req JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registration, err := h.engine.JoinByInviteCode(c.Request.Context(), studentID, req.InviteCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, registration)
}

// GetTeam handles GET /teams/:inviteCode
// @Summary Get a team
// @Description Get the roster, limit and state of the team behind an invite code
// @Tags teams
// @Produce json
// @Param inviteCode path string true "Invite code"
// @Success 200 {object} service.TeamView "Team"
// @Failure 404 {object} ErrorResponse "Invite code not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{inviteCode} [get]
func (h *RegistrationHandler) GetTeam(c *gin.Context) {
	view, err := h.engine.GetTeam(c.Request.Context(), c.Param("inviteCode"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// LeaveRegistration handles DELETE /registrations/:id
// @Summary Cancel a registration
// @Description Cancel the caller's registration. The caller leaves every team they are on and a new captain is chosen where needed.
// @Tags registrations
// @Produce json
// @Param id path string true "Registration ID (UUID)"
// @Success 200 {object} service.PropagationReport "Registration cancelled"
// @Failure 400 {object} ErrorResponse "Invalid registration ID"
// @Failure 403 {object} ErrorResponse "Not the registration owner"
// @Failure 404 {object} ErrorResponse "Registration not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /registrations/{id} [delete]
func (h *RegistrationHandler) LeaveRegistration(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}
	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration ID"})
		return
	}

	report, err := h.engine.LeaveRegistration(c.Request.Context(), registrationID, studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// RemoveMember handles DELETE /registrations/:id/disciplines/:discipline/members/:memberId
// @Summary Remove a team member
// @Description Captain removes a member from a team. The removed student loses the team entry.
// @Tags teams
// @Produce json
// @Param id path string true "Captain's registration ID (UUID)"
// @Param discipline path string true "Discipline name"
// @Param memberId path string true "Student ID of the member (UUID)"
// @Success 200 {object} service.PropagationReport "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid request or member is captain"
// @Failure 403 {object} ErrorResponse "Not the captain"
// @Failure 404 {object} ErrorResponse "Registration, discipline or member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /registrations/{id}/disciplines/{discipline}/members/{memberId} [delete]
func (h *RegistrationHandler) RemoveMember(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}
	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration ID"})
		return
	}
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	report, err := h.engine.RemoveMember(c.Request.Context(), registrationID, studentID, memberID, c.Param("discipline"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// SyncTeam handles POST /events/:eventId/disciplines/:discipline/sync
// @Summary Sync a team
// @Description Rewrite every copy of the caller's team from the caller's copy, optionally renaming it. Missing copies are created and stale ones removed.
// @Tags teams
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID (UUID)"
// @Param discipline path string true "Discipline name"
// @Param updates body service.SyncUpdates false "Changes applied to every copy"
// @Success 200 {object} service.SyncResult "Team synced"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the captain or not on the team"
// @Failure 404 {object} ErrorResponse "Registration or discipline not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /events/{eventId}/disciplines/{discipline}/sync [post]
func (h *RegistrationHandler) SyncTeam(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	var updates service.SyncUpdates
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.engine.SyncTeam(c.Request.Context(), eventID, c.Param("discipline"), studentID, updates)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func requireStudent(c *gin.Context) (uuid.UUID, bool) {
	studentID, ok := auth.GetStudentID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return uuid.Nil, false
	}
	return studentID, true
}

// respondError maps typed service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var capacity *apperrors.CapacityError
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &capacity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "limit": capacity.Limit})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
