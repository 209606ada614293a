package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"distio/domain/core"
	"distio/domain/dist"
	"distio/internal"
	"distio/internal/errors"
	"distio/ports"
)

// maxUploadBytes caps uploaded input files
const maxUploadBytes = 50 * 1024 * 1024

// handleCreateRun ingests an uploaded CSV or XLSX file against the
// schema named in the form and returns the persisted run record
func (s *Server) handleCreateRun(c *gin.Context) {
	if err := s.ingests.Acquire(c.Request.Context(), 1); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingestion capacity unavailable"})
		return
	}
	defer s.ingests.Release(1)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file exceeds the %dMB limit", maxUploadBytes/(1024*1024)),
		})
		return
	}

	kind, err := sourceKind(header.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schema := parseSchema(c.PostForm("schema"))

	tmpDir, err := os.MkdirTemp("", "distio-upload-")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage upload"})
		return
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, filepath.Base(header.Filename))
	if err := c.SaveUploadedFile(header, tmpPath); err != nil {
		internal.DefaultLogger.Error("[API] Failed to stage upload %s: %v", header.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage upload"})
		return
	}

	record, err := s.ingestor.IngestFile(c.Request.Context(), tmpPath, header.Filename, kind, schema)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// handleListRuns returns stored runs, newest first
func (s *Server) handleListRuns(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	runs, err := s.repo.ListRuns(c.Request.Context(), limit)
	if err != nil {
		s.renderError(c, err)
		return
	}
	if runs == nil {
		runs = []*ports.RunRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs, "count": len(runs)})
}

// handleGetRun returns one run record by ID
func (s *Server) handleGetRun(c *gin.Context) {
	id, err := core.ParseRunID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := s.repo.GetRun(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// handleRunReport renders a run's ingestion report as Markdown, or as a
// complete HTML page with ?format=html
func (s *Server) handleRunReport(c *gin.Context) {
	id, err := core.ParseRunID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := s.repo.GetRun(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	if c.DefaultQuery("format", "markdown") == "html" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", s.report.HTML(record))
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(s.report.Markdown(record)))
}

// handleDeleteRun removes one run record by ID
func (s *Server) handleDeleteRun(c *gin.Context) {
	id, err := core.ParseRunID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.repo.DeleteRun(c.Request.Context(), id); err != nil {
		s.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// renderError maps service errors to HTTP statuses by their code
func (s *Server) renderError(c *gin.Context, err error) {
	if core.IsNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeIngestFailed, errors.CodeInvalidInput, errors.CodeValidationError:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		internal.DefaultLogger.Error("[API] %v", err)
	}

	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}

// sourceKind classifies an upload by its file extension
func sourceKind(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ports.SourceKindCSV, nil
	case ".xlsx":
		return ports.SourceKindXLSX, nil
	}
	return "", fmt.Errorf("only .csv and .xlsx files are supported")
}

// parseSchema splits the comma-separated schema form field. An empty
// field yields an empty schema, which ingests no values.
func parseSchema(raw string) dist.Schema {
	if strings.TrimSpace(raw) == "" {
		return dist.NewSchema()
	}

	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return dist.NewSchema(names...)
}
