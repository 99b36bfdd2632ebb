package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestStaticRouteServesUploadDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	// same layout filemgr writes to: static/uploads/<entity>/<file>
	target := filepath.Join("static", "uploads", "product")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "img.png"), []byte("image-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	router := httprouter.New()
	AddStaticRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/static/uploads/product/img.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "image-bytes" {
		t.Fatalf("body = %q, want the stored file content", rec.Body.String())
	}
}
