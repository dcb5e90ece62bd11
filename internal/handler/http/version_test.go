package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contact-book/models"
)

func TestGetServerVersion(t *testing.T) {
	h, m := newMockedHandler(t)
	want := models.VersionResponse{Version: "1.2.3", Date: "2026-10-01", Commit: "abc123"}
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(want)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestGetServerVersion_NoSessionNeeded(t *testing.T) {
	h, m := newMockedHandler(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.VersionResponse{Version: "dev", Date: "N/A", Commit: "N/A"})

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"dev","date":"N/A","commit":"N/A"}`, rec.Body.String())
}
