package assets

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(FS(), "styles.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ".animate-fade-in")
}

func TestHandler(t *testing.T) {
	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/static/styles.css", http.StatusOK},
		{"/static/images/favicon.svg", http.StatusOK},
		{"/static/missing.css", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			Handler().ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/static/styles.css", Path("styles.css"))
}
