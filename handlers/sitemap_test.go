package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glamora/models"
)

type stubSalonLister struct {
	salons []models.Salon
}

func (s *stubSalonLister) Create(ctx context.Context, salon *models.Salon) error { return nil }
func (s *stubSalonLister) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	return nil, nil
}
func (s *stubSalonLister) Exists(ctx context.Context, id string) (bool, error) { return false, nil }
func (s *stubSalonLister) UpdateWithDocument(ctx context.Context, id string, update interface{}) error {
	return nil
}
func (s *stubSalonLister) Delete(ctx context.Context, id string) error { return nil }
func (s *stubSalonLister) ListPublished(ctx context.Context, city, query string, limit, offset int64) ([]models.Salon, error) {
	return s.salons, nil
}
func (s *stubSalonLister) ListByOwner(ctx context.Context, ownerID string) ([]models.Salon, error) {
	return nil, nil
}
func (s *stubSalonLister) ListAll(ctx context.Context, limit, offset int64) ([]models.Salon, error) {
	return nil, nil
}
func (s *stubSalonLister) ApplyRating(ctx context.Context, id string, average float64, count int) error {
	return nil
}

func TestGetSitemapHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	updated := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	h := &SitemapHandler{
		Salons: &stubSalonLister{salons: []models.Salon{
			{ID: "salon-1", Name: "Velvet Touch", UpdatedAt: updated},
			{ID: "salon-2", Name: "Shear Bliss", UpdatedAt: updated},
		}},
		BaseURL: "https://glamora.example.com/",
	}

	r := gin.New()
	r.GET("/sitemap.xml", h.GetSitemapHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")

	body := w.Body.String()
	assert.Contains(t, body, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, body, "<loc>https://glamora.example.com/</loc>")
	assert.Contains(t, body, "<loc>https://glamora.example.com/salons/salon-1</loc>")
	assert.Contains(t, body, "<loc>https://glamora.example.com/salons/salon-2</loc>")
	assert.Contains(t, body, "<lastmod>2026-08-20</lastmod>")
}
