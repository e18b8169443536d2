package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Reivaj85/TaskManagerApplication/internal/config"
	"github.com/Reivaj85/TaskManagerApplication/internal/handlers"
	"github.com/Reivaj85/TaskManagerApplication/internal/middlewares"
	"github.com/Reivaj85/TaskManagerApplication/internal/models"
	"github.com/Reivaj85/TaskManagerApplication/internal/routes"
	"github.com/Reivaj85/TaskManagerApplication/internal/services"
	"github.com/Reivaj85/TaskManagerApplication/internal/testutil"
)

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTIssuer:     "taskmanager-test",
		TokenDuration: time.Hour,
	}

	uow := testutil.NewMemoryUnitOfWork()
	tokens := services.NewJWTTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenDuration)

	h := handlers.New(
		services.NewAuthenticationService(uow, tokens),
		services.NewUserService(uow),
		services.NewProjectService(uow),
		services.NewTaskService(uow),
		cfg,
	)

	r := gin.New()
	routes.Setup(r, h, middlewares.NewAuthMiddleware(cfg.JWTSecret))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["code"]
}

// register runs a registration and returns the session token and user id.
func register(t *testing.T, r *gin.Engine, username string) (string, string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Username: username,
		Password: "secret1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", username, w.Code, w.Body.String())
	}
	resp := decode[models.AuthResponse](t, w)
	return resp.Token, resp.User.ID.String()
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestServer()

	w := doJSON(t, r, http.MethodGet, "/api/v1/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestServer()

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Username: "alice",
		Password: "secret1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	resp := decode[models.AuthResponse](t, w)
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
	if resp.User.Username != "alice" {
		t.Fatalf("username = %q", resp.User.Username)
	}

	// Duplicate username is a business-rule violation, not a validation error.
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Username: "alice",
		Password: "another1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate status = %d", w.Code)
	}
	if code := errorCode(t, w); code != "BUSINESS_RULE_VIOLATION" {
		t.Fatalf("code = %q", code)
	}
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	r := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if code := errorCode(t, w); code != "INVALID_REQUEST" {
		t.Fatalf("code = %q", code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestServer()
	register(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Username: "alice",
		Password: "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if decode[models.AuthResponse](t, w).Token == "" {
		t.Fatal("expected a session token")
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d", w.Code)
	}
	if code := errorCode(t, w); code != "INVALID_CREDENTIALS" {
		t.Fatalf("code = %q", code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestServer()

	for _, path := range []string{"/api/v1/projects", "/api/v1/tasks", "/api/v1/users/me", "/api/v1/auth/me"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token: status = %d", path, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d", w.Code)
	}
}

func TestProjectEndpoints(t *testing.T) {
	r := newTestServer()
	token, _ := register(t, r, "alice")

	// Registration seeds the default project.
	w := doJSON(t, r, http.MethodGet, "/api/v1/projects", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	listed := decode[[]models.ProjectDTO](t, w)
	if len(listed) != 1 || !listed[0].IsDefault {
		t.Fatalf("expected only the default project, got %+v", listed)
	}
	defaultID := listed[0].ID.String()

	w = doJSON(t, r, http.MethodPost, "/api/v1/projects", token, models.CreateProjectRequest{Name: "Work"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body = %s", w.Code, w.Body.String())
	}
	work := decode[models.ProjectDTO](t, w)

	w = doJSON(t, r, http.MethodPut, "/api/v1/projects/"+work.ID.String(), token, models.UpdateProjectRequest{Name: "Chores"})
	if w.Code != http.StatusOK {
		t.Fatalf("rename status = %d", w.Code)
	}
	if decode[models.ProjectDTO](t, w).Name != "Chores" {
		t.Fatal("rename must be reflected in the response")
	}

	// The default project cannot be deleted.
	w = doJSON(t, r, http.MethodDelete, "/api/v1/projects/"+defaultID, token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete default status = %d", w.Code)
	}
	if code := errorCode(t, w); code != "BUSINESS_RULE_VIOLATION" {
		t.Fatalf("code = %q", code)
	}

	// Moving the default flag, then the old default becomes deletable.
	w = doJSON(t, r, http.MethodPut, "/api/v1/projects/"+work.ID.String()+"/default", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("set default status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/v1/projects/"+defaultID, token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete old default status = %d body = %s", w.Code, w.Body.String())
	}
}

func TestTaskEndpoints(t *testing.T) {
	r := newTestServer()
	token, _ := register(t, r, "alice")

	projects := decode[[]models.ProjectDTO](t, doJSON(t, r, http.MethodGet, "/api/v1/projects", token, nil))
	projectID := projects[0].ID

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", token, models.CreateTaskRequest{
		ProjectID:   projectID,
		Title:       "Buy milk",
		Description: "2 liters",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body = %s", w.Code, w.Body.String())
	}
	task := decode[models.TaskDTO](t, w)
	if task.IsCompleted {
		t.Fatal("new tasks start incomplete")
	}
	taskID := task.ID.String()

	w = doJSON(t, r, http.MethodPatch, "/api/v1/tasks/"+taskID+"/complete", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete status = %d", w.Code)
	}
	if !decode[models.TaskDTO](t, w).IsCompleted {
		t.Fatal("task must be completed")
	}

	w = doJSON(t, r, http.MethodPatch, "/api/v1/tasks/"+taskID+"/reopen", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reopen status = %d", w.Code)
	}
	if decode[models.TaskDTO](t, w).IsCompleted {
		t.Fatal("task must be incomplete after reopen")
	}

	// Project-scoped listing via query parameter.
	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks?projectId="+projectID.String(), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("filtered list status = %d", w.Code)
	}
	if got := decode[[]models.TaskDTO](t, w); len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/tasks/"+taskID, token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/"+taskID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted task status = %d", w.Code)
	}
	if code := errorCode(t, w); code != "NOT_FOUND" {
		t.Fatalf("code = %q", code)
	}
}

func TestTaskMoveEndpoint(t *testing.T) {
	r := newTestServer()
	token, _ := register(t, r, "alice")

	projects := decode[[]models.ProjectDTO](t, doJSON(t, r, http.MethodGet, "/api/v1/projects", token, nil))
	source := projects[0].ID

	dest := decode[models.ProjectDTO](t, doJSON(t, r, http.MethodPost, "/api/v1/projects", token, models.CreateProjectRequest{Name: "Work"}))

	task := decode[models.TaskDTO](t, doJSON(t, r, http.MethodPost, "/api/v1/tasks", token, models.CreateTaskRequest{
		ProjectID: source,
		Title:     "Buy milk",
	}))

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/"+task.ID.String()+"/move", token, models.MoveTaskRequest{ProjectID: dest.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("move status = %d body = %s", w.Code, w.Body.String())
	}
	if decode[models.TaskDTO](t, w).ProjectID != dest.ID {
		t.Fatal("task must land in the destination project")
	}
}

// Other users' resources answer 403, never leak content.
func TestCrossUserAccessIsForbidden(t *testing.T) {
	r := newTestServer()
	aliceToken, _ := register(t, r, "alice")
	bobToken, _ := register(t, r, "bob")

	projects := decode[[]models.ProjectDTO](t, doJSON(t, r, http.MethodGet, "/api/v1/projects", aliceToken, nil))
	projectID := projects[0].ID

	task := decode[models.TaskDTO](t, doJSON(t, r, http.MethodPost, "/api/v1/tasks", aliceToken, models.CreateTaskRequest{
		ProjectID: projectID,
		Title:     "Buy milk",
	}))

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects/"+projectID.String(), bobToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("project status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/"+task.ID.String(), bobToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("task status = %d", w.Code)
	}
	if code := errorCode(t, w); code != "ACCESS_DENIED" {
		t.Fatalf("code = %q", code)
	}
}

func TestUserEndpoints(t *testing.T) {
	r := newTestServer()
	token, userID := register(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	profile := decode[models.UserDTO](t, w)
	if profile.ID.String() != userID || profile.Username != "alice" {
		t.Fatalf("profile = %+v", profile)
	}

	w = doJSON(t, r, http.MethodPut, "/api/v1/users/me", token, models.UpdateUserRequest{
		CurrentPassword: "secret1",
		NewPassword:     "brandnew2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d body = %s", w.Code, w.Body.String())
	}

	// Old password stops working, new one logs in.
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{Username: "alice", Password: "secret1"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("old password status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{Username: "alice", Password: "brandnew2"})
	if w.Code != http.StatusOK {
		t.Fatalf("new password status = %d", w.Code)
	}
}

func TestMeEndpoint(t *testing.T) {
	r := newTestServer()
	token, userID := register(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/api/v1/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decode[models.AuthResponse](t, w)
	if resp.User.ID.String() != userID {
		t.Fatal("wrong user returned")
	}
	if resp.Token == "" {
		t.Fatal("expected a refreshed token")
	}
}

func TestInvalidPathIDs(t *testing.T) {
	r := newTestServer()
	token, _ := register(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects/not-a-uuid", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("project status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/not-a-uuid", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("task status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks?projectId=not-a-uuid", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("filter status = %d", w.Code)
	}
}
