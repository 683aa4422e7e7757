package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestServeFrontend(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	serveFrontend(router, fstest.MapFS{
		"index.html":       {Data: []byte("<html>index</html>")},
		"static/app.js":    {Data: []byte("console.log(1)")},
		"static/style.css": {Data: []byte("body{}")},
	})

	tests := []struct {
		path        string
		status      int
		body        string
		contentType string
	}{
		{"/", http.StatusOK, "<html>index</html>", "text/html"},
		{"/static/app.js", http.StatusOK, "console.log(1)", "javascript"},
		{"/project/skyline-residency", http.StatusOK, "<html>index</html>", "text/html"},
		{"/static", http.StatusOK, "<html>index</html>", "text/html"},
		{"/api/v1/nothing", http.StatusNotFound, `{"error":"API endpoint not found"}`, "application/json"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), tt.contentType)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"GET", "POST"}, splitList(" GET, POST ,"))
	assert.Nil(t, splitList(""))
}
