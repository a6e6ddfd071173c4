package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulsa-utsa/ulsa-backend/internal/model"
)

// The wire shapes here are fixed by the signup page contract: failures are
// a bare {"error": message} object and the registration success body is the
// flat envelope below. Listings serialize as a plain JSON array of rows.

// ErrorBody is the error response envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// Registered is the registration success envelope.
type Registered struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	MemberID   int       `json:"memberId"`
	DateJoined time.Time `json:"dateJoined"`
}

// Success sends a successful JSON response with the given status code and data.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Created sends the 201 registration success envelope for a new member.
func Created(c *gin.Context, member *model.Member) {
	c.JSON(http.StatusCreated, Registered{
		Success:    true,
		Message:    "Member registered successfully!",
		MemberID:   member.ID,
		DateJoined: member.DateJoined,
	})
}

// Fail sends an error response with the message for the given error code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code)})
}
