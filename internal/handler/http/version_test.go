package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t)
	h.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}
