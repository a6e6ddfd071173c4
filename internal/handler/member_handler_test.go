package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulsa-utsa/ulsa-backend/internal/handler"
	"github.com/ulsa-utsa/ulsa-backend/internal/model"
	"github.com/ulsa-utsa/ulsa-backend/internal/service"
	"github.com/ulsa-utsa/ulsa-backend/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Setup()
	os.Exit(m.Run())
}

// fakeMemberService scripts Register/ListMembers results for handler tests.
type fakeMemberService struct {
	registerErr error
	listErr     error
	members     []*model.Member
	registered  *model.RegisterMemberRequest
}

func (f *fakeMemberService) Register(_ context.Context, req *model.RegisterMemberRequest) (*model.Member, error) {
	f.registered = req
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &model.Member{
		ID:         42,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		SchoolID:   req.UlsaID,
		Major:      req.Major,
		GradYear:   2026,
		Position:   model.PositionMember,
		DateJoined: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeMemberService) ListMembers(_ context.Context) ([]*model.Member, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.members, nil
}

func newTestRouter(svc service.MemberService) *gin.Engine {
	h := handler.NewMemberHandler(svc, zerolog.Nop())
	r := gin.New()
	r.POST("/api/members", h.Register)
	r.GET("/api/members", h.List)
	return r
}

func postMembers(t *testing.T, r *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/members", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]string {
	return map[string]string{
		"firstName":      "Ada",
		"lastName":       "Lovelace",
		"email":          "ab123@my.utsa.edu",
		"ulsaId":         "ab123",
		"major":          "Computer Science",
		"graduationYear": "2026",
	}
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestRegister_Created(t *testing.T) {
	svc := &fakeMemberService{}
	r := newTestRouter(svc)

	w := postMembers(t, r, validPayload())
	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success    bool      `json:"success"`
		Message    string    `json:"message"`
		MemberID   int       `json:"memberId"`
		DateJoined time.Time `json:"dateJoined"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Member registered successfully!", body.Message)
	assert.Equal(t, 42, body.MemberID)
	assert.False(t, body.DateJoined.IsZero())

	require.NotNil(t, svc.registered)
	assert.Equal(t, "ab123", svc.registered.UlsaID)
}

func TestRegister_MissingFields(t *testing.T) {
	for _, field := range []string{"firstName", "lastName", "email", "ulsaId", "major", "graduationYear"} {
		t.Run(field, func(t *testing.T) {
			svc := &fakeMemberService{}
			r := newTestRouter(svc)

			payload := validPayload()
			delete(payload, field)

			w := postMembers(t, r, payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "All fields are required", errorMessage(t, w))
			assert.Nil(t, svc.registered, "validation failure must not reach the service")
		})
	}
}

func TestRegister_EmptyFieldCountsAsMissing(t *testing.T) {
	svc := &fakeMemberService{}
	r := newTestRouter(svc)

	payload := validPayload()
	payload["major"] = ""

	w := postMembers(t, r, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", errorMessage(t, w))
}

func TestRegister_InvalidEmail(t *testing.T) {
	for _, email := range []string{
		"ab123@gmail.com",
		"ab123@utsa.com",
		"ab123@my.utsa.edu.evil.com",
		"ab 123@my.utsa.edu",
		"@utsa.edu",
	} {
		t.Run(email, func(t *testing.T) {
			svc := &fakeMemberService{}
			r := newTestRouter(svc)

			payload := validPayload()
			payload["email"] = email

			w := postMembers(t, r, payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t,
				"Please use your UTSA email (john.doe@my.utsa.edu or abc123@utsa.edu)",
				errorMessage(t, w))
			assert.Nil(t, svc.registered)
		})
	}
}

func TestRegister_InvalidSchoolID(t *testing.T) {
	for _, id := range []string{"a123", "abcd123", "abc12", "abc12345", "123abc", "abc12x"} {
		t.Run(id, func(t *testing.T) {
			svc := &fakeMemberService{}
			r := newTestRouter(svc)

			payload := validPayload()
			payload["ulsaId"] = id

			w := postMembers(t, r, payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Please enter a valid UTSA ID (e.g., abc123)", errorMessage(t, w))
			assert.Nil(t, svc.registered)
		})
	}
}

func TestRegister_MissingFieldTakesPrecedenceOverFormat(t *testing.T) {
	svc := &fakeMemberService{}
	r := newTestRouter(svc)

	payload := validPayload()
	delete(payload, "firstName")
	payload["email"] = "ab123@gmail.com"

	w := postMembers(t, r, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", errorMessage(t, w))
}

func TestRegister_MalformedJSON(t *testing.T) {
	svc := &fakeMemberService{}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/members", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request payload", errorMessage(t, w))
	assert.Nil(t, svc.registered)
}

func TestRegister_GraduationYearRejected(t *testing.T) {
	svc := &fakeMemberService{registerErr: service.ErrGraduationYearOutOfRange}
	r := newTestRouter(svc)

	payload := validPayload()
	payload["graduationYear"] = "1999"

	w := postMembers(t, r, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter a valid graduation year", errorMessage(t, w))
}

func TestRegister_Conflict(t *testing.T) {
	svc := &fakeMemberService{registerErr: service.ErrAlreadyRegistered}
	r := newTestRouter(svc)

	w := postMembers(t, r, validPayload())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "This email or UTSA ID is already registered", errorMessage(t, w))
}

func TestRegister_InternalError(t *testing.T) {
	svc := &fakeMemberService{registerErr: assert.AnError}
	r := newTestRouter(svc)

	w := postMembers(t, r, validPayload())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The generic message only; the cause stays server-side.
	assert.Equal(t, "Failed to register member. Please try again.", errorMessage(t, w))
}

func TestList_Empty(t *testing.T) {
	svc := &fakeMemberService{}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestList_OrderPreserved(t *testing.T) {
	now := time.Now().UTC()
	svc := &fakeMemberService{members: []*model.Member{
		{ID: 2, FirstName: "Grace", Email: "gh456@utsa.edu", SchoolID: "gh456", DateJoined: now},
		{ID: 1, FirstName: "Ada", Email: "ab123@my.utsa.edu", SchoolID: "ab123", DateJoined: now.Add(-time.Hour)},
	}}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var members []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 2)
	assert.Equal(t, "gh456", members[0]["school_id"])
	assert.Equal(t, "ab123", members[1]["school_id"])
}

func TestList_InternalError(t *testing.T) {
	svc := &fakeMemberService{listErr: assert.AnError}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch members", errorMessage(t, w))
}
