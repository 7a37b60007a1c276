package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	repository "taskflow.com/taskflow/internal/repositories"
	"taskflow.com/taskflow/internal/services"
)

func newTestServer() *echo.Echo {
	service := services.NewTaskService(repository.NewMemoryTaskRepository())

	e := echo.New()
	Register(e, NewHandler(service), 100000)
	return e
}

func request(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func createTask(t *testing.T, e *echo.Echo, payload string) map[string]interface{} {
	t.Helper()
	rec := request(e, http.MethodPost, "/tasks", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	return decode(t, rec)
}

func TestRootEndpoint(t *testing.T) {
	e := newTestServer()

	rec := request(e, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if msg, _ := decode(t, rec)["message"].(string); !strings.Contains(msg, "Welcome to TaskFlow API") {
		t.Errorf("unexpected welcome message: %q", msg)
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer()

	rec := request(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", body["status"])
	}
	if body["tasks_count"] != float64(0) {
		t.Errorf("expected tasks_count 0, got %v", body["tasks_count"])
	}

	createTask(t, e, `{"title":"one"}`)

	body = decode(t, request(e, http.MethodGet, "/health", ""))
	if body["tasks_count"] != float64(1) {
		t.Errorf("expected tasks_count 1, got %v", body["tasks_count"])
	}
}

func TestCreateTask_OnlyTitle(t *testing.T) {
	e := newTestServer()

	task := createTask(t, e, `{"title":"Buy milk"}`)

	if task["title"] != "Buy milk" {
		t.Errorf("expected title preserved, got %v", task["title"])
	}
	if task["status"] != "todo" {
		t.Errorf("expected default status todo, got %v", task["status"])
	}
	if task["priority"] != "medium" {
		t.Errorf("expected default priority medium, got %v", task["priority"])
	}
	if task["description"] != nil {
		t.Errorf("expected null description, got %v", task["description"])
	}
	if task["id"] == "" || task["id"] == nil {
		t.Error("expected generated id")
	}
	if task["created_at"] == nil || task["updated_at"] == nil {
		t.Error("expected timestamps in response")
	}
}

func TestCreateTask_Invalid(t *testing.T) {
	e := newTestServer()

	cases := []struct {
		name    string
		payload string
		code    int
	}{
		{"empty title", `{"title":""}`, http.StatusUnprocessableEntity},
		{"whitespace title", `{"title":"   "}`, http.StatusUnprocessableEntity},
		{"missing title", `{"description":"no title here"}`, http.StatusUnprocessableEntity},
		{"bad status", `{"title":"t","status":"archived"}`, http.StatusUnprocessableEntity},
		{"bad priority", `{"title":"t","priority":"urgent"}`, http.StatusUnprocessableEntity},
		{"malformed json", `{"title":`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := request(e, http.MethodPost, "/tasks", tc.payload)
			if rec.Code != tc.code {
				t.Errorf("expected %d, got %d: %s", tc.code, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetTask(t *testing.T) {
	e := newTestServer()

	created := createTask(t, e, `{"title":"Find me"}`)
	id := created["id"].(string)

	rec := request(e, http.MethodGet, "/tasks/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if decode(t, rec)["title"] != "Find me" {
		t.Error("fetched task does not match created task")
	}

	rec = request(e, http.MethodGet, "/tasks/fake-id-123", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", rec.Code)
	}
}

func TestUpdateTask_StatusOnly(t *testing.T) {
	e := newTestServer()

	created := createTask(t, e, `{"title":"Original"}`)
	id := created["id"].(string)

	time.Sleep(5 * time.Millisecond)

	rec := request(e, http.MethodPut, "/tasks/"+id, `{"status":"done"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	updated := decode(t, rec)
	if updated["status"] != "done" {
		t.Errorf("expected status done, got %v", updated["status"])
	}
	if updated["title"] != "Original" {
		t.Errorf("title must be unchanged, got %v", updated["title"])
	}

	createdAt, err := time.Parse(time.RFC3339Nano, created["updated_at"].(string))
	if err != nil {
		t.Fatalf("bad created updated_at: %v", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, updated["updated_at"].(string))
	if err != nil {
		t.Fatalf("bad updated updated_at: %v", err)
	}
	if !updatedAt.After(createdAt) {
		t.Errorf("updated_at must strictly advance: %v -> %v", createdAt, updatedAt)
	}
}

func TestUpdateTask_UnknownID(t *testing.T) {
	e := newTestServer()

	// 404 wins regardless of payload validity.
	rec := request(e, http.MethodPut, "/tasks/fake-id-123", `{"status":"done"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for valid payload, got %d", rec.Code)
	}

	rec = request(e, http.MethodPut, "/tasks/fake-id-123", `{"title":""}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for invalid payload, got %d", rec.Code)
	}
}

func TestUpdateTask_InvalidFields(t *testing.T) {
	e := newTestServer()

	created := createTask(t, e, `{"title":"Valid"}`)
	id := created["id"].(string)

	cases := []struct {
		name    string
		payload string
	}{
		{"empty title", `{"title":""}`},
		{"null title", `{"title":null}`},
		{"bad status", `{"status":"archived"}`},
		{"null status", `{"status":null}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := request(e, http.MethodPut, "/tasks/"+id, tc.payload)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestUpdateTask_NullClearsDescription(t *testing.T) {
	e := newTestServer()

	created := createTask(t, e, `{"title":"Keep","description":"to be cleared"}`)
	id := created["id"].(string)

	rec := request(e, http.MethodPut, "/tasks/"+id, `{"description":null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if decode(t, rec)["description"] != nil {
		t.Error("explicit null must clear description")
	}
}

func TestDeleteTask(t *testing.T) {
	e := newTestServer()

	created := createTask(t, e, `{"title":"Doomed"}`)
	id := created["id"].(string)

	rec := request(e, http.MethodDelete, "/tasks/"+id, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}

	if rec := request(e, http.MethodGet, "/tasks/"+id, ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
	if rec := request(e, http.MethodDelete, "/tasks/"+id, ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on repeated delete, got %d", rec.Code)
	}
}

func TestListTasks(t *testing.T) {
	e := newTestServer()

	rec := request(e, http.MethodGet, "/tasks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected bare empty array, got %q", body)
	}

	createTask(t, e, `{"title":"hers","assignee":"alice"}`)
	createTask(t, e, `{"title":"his","assignee":"bob"}`)

	rec = request(e, http.MethodGet, "/tasks?assignee=alice", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var tasks []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("expected array response: %v", err)
	}
	if len(tasks) != 1 || tasks[0]["assignee"] != "alice" {
		t.Errorf("assignee filter returned wrong set: %v", tasks)
	}
}

func TestListTasks_UnknownFilterValue(t *testing.T) {
	e := newTestServer()

	if rec := request(e, http.MethodGet, "/tasks?status=archived", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for unknown status filter, got %d", rec.Code)
	}
	if rec := request(e, http.MethodGet, "/tasks?priority=urgent", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for unknown priority filter, got %d", rec.Code)
	}
}
