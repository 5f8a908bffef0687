package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() { gin.SetMode(gin.TestMode) }

func TestErrorWritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	resp := Error[any](c, http.StatusInternalServerError, "Server error", nil)
	if resp.Status != http.StatusInternalServerError || w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d / %d", resp.Status, w.Code)
	}
	var body APIResponse[any]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Success || body.Message != "Server error" || body.RequestID != "req-1" {
		t.Fatalf("body = %+v", body)
	}
}

func TestSuccessDefaultsStatus(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, 0, map[string]string{"ok": "yes"}, "fine", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
}

func TestErrorsBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Errors(c, 0, ErrorItem{Msg: "User already exists"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", w.Code)
	}
	if got := w.Body.String(); got != `{"errors":[{"msg":"User already exists"}]}` {
		t.Fatalf("body = %s", got)
	}
}
