package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kauhanhernandes/portfolio/internal/api/dto/common"
	"github.com/kauhanhernandes/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/contact/submit", nil)

	HandleAPIError(c, logging.Discard(), errors.New("upstream 503"), http.StatusBadGateway, common.ErrCodeDelivery, "Erro ao enviar mensagem. Tente novamente.")

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
	if !c.IsAborted() {
		t.Error("context should be aborted")
	}

	var resp common.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || resp.Error == nil || resp.Error.Code != string(common.ErrCodeDelivery) {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Error.Details != "upstream 503" {
		t.Errorf("details = %v, want upstream 503 in test mode", resp.Error.Details)
	}
}
