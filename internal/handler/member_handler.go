package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/ulsa-utsa/ulsa-backend/internal/model"
	"github.com/ulsa-utsa/ulsa-backend/internal/response"
	"github.com/ulsa-utsa/ulsa-backend/internal/service"
	"github.com/ulsa-utsa/ulsa-backend/internal/validator"
)

// MemberHandler handles the public membership signup endpoints.
type MemberHandler struct {
	memberService service.MemberService
	log           zerolog.Logger
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService service.MemberService, log zerolog.Logger) *MemberHandler {
	return &MemberHandler{memberService: memberService, log: log}
}

// Register godoc
// POST /api/members
// Validates the six-field signup payload and persists a new member.
func (h *MemberHandler) Register(c *gin.Context) {
	var req model.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().
			Fields(map[string]interface{}{"fields": validator.TranslateErrors(err)}).
			Msg("registration payload rejected")
		response.Fail(c, http.StatusBadRequest, classifyBindError(err))
		return
	}

	member, err := h.memberService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGraduationYearOutOfRange):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidGradYear)
		case errors.Is(err, service.ErrAlreadyRegistered):
			response.Fail(c, http.StatusConflict, response.ErrAlreadyRegistered)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrRegisterFailed)
		}
		return
	}

	response.Created(c, member)
}

// List godoc
// GET /api/members
// Returns all members as a bare array, most recent signup first.
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrFetchFailed)
		return
	}

	if members == nil {
		members = []*model.Member{} // Serialize as [] rather than null.
	}
	response.Success(c, http.StatusOK, members)
}

// classifyBindError maps a binding failure onto the signup error catalog.
// Missing fields take precedence over format failures, matching the
// validation order the form relies on.
func classifyBindError(err error) response.ErrCode {
	var ve govalidator.ValidationErrors
	if !errors.As(err, &ve) {
		return response.ErrInvalidPayload // Malformed JSON, wrong types, etc.
	}
	for _, fe := range ve {
		if fe.Tag() == "required" {
			return response.ErrAllFieldsRequired
		}
	}
	for _, fe := range ve {
		switch fe.Tag() {
		case "utsa_email":
			return response.ErrInvalidEmail
		case "utsa_id":
			return response.ErrInvalidUlsaID
		}
	}
	return response.ErrAllFieldsRequired
}
