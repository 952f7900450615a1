package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/peccode-dev/peccode-api/internal/auth"
	"github.com/peccode-dev/peccode-api/internal/dto"
	"github.com/peccode-dev/peccode-api/internal/handler"
	"github.com/peccode-dev/peccode-api/internal/middleware"
	"github.com/peccode-dev/peccode-api/internal/models"
	"github.com/peccode-dev/peccode-api/internal/repository"
	"github.com/peccode-dev/peccode-api/internal/service"
)

func newQuestionApp(t *testing.T, name string) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Question{}, &models.Submission{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	tokens := auth.NewTokenManager("test-secret", 12*time.Hour)

	questionService := service.NewQuestionService(repository.NewQuestionRepository(db), validate, zerolog.Nop())
	questionHandler := handler.NewQuestionHandler(questionService, zerolog.Nop())

	app := fiber.New()
	questions := app.Group("/api/questions")
	questionHandler.RegisterPublic(questions)

	staffOnly := app.Group("/api/questions",
		middleware.JWTProtected(tokens),
		middleware.RequireRole(models.RoleStaff),
	)
	questionHandler.RegisterStaff(staffOnly)

	return app, tokens
}

func tokenFor(t *testing.T, tokens *auth.TokenManager, role string) string {
	t.Helper()
	token, err := tokens.Issue(auth.Identity{ID: role + "-user-id", Email: role + "@x.edu", Role: role})
	require.NoError(t, err)
	return token
}

func questionBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Two Sum",
		"description": "Find two numbers that add up to the target.",
		"difficulty":  "easy",
		"tags":        []string{"arrays", "hash-map"},
	}
}

func TestQuestionHandlerCreateRequiresStaff(t *testing.T) {
	app, tokens := newQuestionApp(t, "question_staff_gate")

	resp := postJSON(t, app, "/api/questions", questionBody(), tokenFor(t, tokens, models.RoleStudent))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = postJSON(t, app, "/api/questions", questionBody(), "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestQuestionHandlerStaffCreateAndGet(t *testing.T) {
	app, tokens := newQuestionApp(t, "question_create_get")

	resp := postJSON(t, app, "/api/questions", questionBody(), tokenFor(t, tokens, models.RoleStaff))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data dto.QuestionResponse `json:"data"`
	}
	decodeBody(t, resp, &created)
	require.Equal(t, "Two Sum", created.Data.Title)
	require.Equal(t, "staff-user-id", created.Data.CreatedBy)

	req := httptest.NewRequest(http.MethodGet, "/api/questions/"+created.Data.ID, nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var fetched struct {
		Data dto.QuestionResponse `json:"data"`
	}
	decodeBody(t, getResp, &fetched)
	require.Equal(t, created.Data.ID, fetched.Data.ID)
	require.Equal(t, []string{"arrays", "hash-map"}, fetched.Data.Tags)
}

func TestQuestionHandlerPublicList(t *testing.T) {
	app, tokens := newQuestionApp(t, "question_list")

	for _, difficulty := range []string{"easy", "medium"} {
		body := questionBody()
		body["title"] = "Question " + difficulty
		body["difficulty"] = difficulty
		resp := postJSON(t, app, "/api/questions", body, tokenFor(t, tokens, models.RoleStaff))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/questions?difficulty=easy", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Data dto.QuestionListResponse `json:"data"`
	}
	decodeBody(t, resp, &list)
	require.Len(t, list.Data.Items, 1)
	require.Equal(t, "easy", list.Data.Items[0].Difficulty)
	require.Equal(t, 1, list.Data.Pagination.TotalItems)
}

func TestQuestionHandlerGetUnknownID(t *testing.T) {
	app, _ := newQuestionApp(t, "question_missing")

	req := httptest.NewRequest(http.MethodGet, "/api/questions/does-not-exist", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQuestionHandlerUpdateByNonCreator(t *testing.T) {
	app, tokens := newQuestionApp(t, "question_other_creator")

	resp := postJSON(t, app, "/api/questions", questionBody(), tokenFor(t, tokens, models.RoleStaff))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data dto.QuestionResponse `json:"data"`
	}
	decodeBody(t, resp, &created)

	otherStaff, err := tokens.Issue(auth.Identity{ID: "other-staff-id", Email: "other@x.edu", Role: models.RoleStaff})
	require.NoError(t, err)

	body := questionBody()
	body["title"] = "Hijacked Title"
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/questions/"+created.Data.ID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+otherStaff)
	updateResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, updateResp.StatusCode)
}
