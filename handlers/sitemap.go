package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	salonRepo "glamora/database/repository/salon"
	"glamora/utils"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapHandler serves /sitemap.xml from the published salon catalogue.
type SitemapHandler struct {
	Salons  salonRepo.SalonRepository
	BaseURL string
}

// GetSitemapHandler handles GET /sitemap.xml.
func (h *SitemapHandler) GetSitemapHandler(c *gin.Context) {
	logger := getLogger(c)
	base := strings.TrimRight(h.BaseURL, "/")

	set := sitemapURLSet{
		Xmlns: sitemapNamespace,
		URLs: []sitemapURL{
			{Loc: base + "/", ChangeFreq: "daily"},
			{Loc: base + "/salons", ChangeFreq: "daily"},
		},
	}

	salons, err := h.Salons.ListPublished(c.Request.Context(), "", "", 0, 0)
	if err != nil {
		logger.Error("Failed to list salons for sitemap", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build sitemap"})
		return
	}
	for _, s := range salons {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/salons/" + s.ID,
			LastMod:    s.UpdatedAt.UTC().Format(utils.DateLayout),
			ChangeFreq: "weekly",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal sitemap", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build sitemap"})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml.Header+string(out)))
}
