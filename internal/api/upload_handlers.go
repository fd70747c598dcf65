package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/careerforge/jobboard/internal/clients/blobstore"
	"github.com/careerforge/jobboard/internal/domain/errs"
	"github.com/careerforge/jobboard/internal/logger"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var allowedResumeMediaTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type UploadHandler struct {
	store *blobstore.Client
}

func NewUploadHandler(store *blobstore.Client) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) UploadResume(c *gin.Context) {

	header, err := c.FormFile("resume")
	if err != nil {
		respondError(c, errs.InvalidInputf("resume file is required"), http.StatusForbidden)
		return
	}

	extension := strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if !allowedResumeExtensions[extension] || !allowedResumeMediaTypes[contentType] {
		respondError(c, errs.InvalidInputf("only pdf, doc and docx files are allowed"), http.StatusForbidden)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, errs.Wrap(err, errs.Internal, "open uploaded file"), http.StatusForbidden)
		return
	}
	defer file.Close()

	url, err := h.store.Upload(c.Request.Context(), header.Filename, contentType, file)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to upload resume: %v", err)
		respondError(c, errs.Wrap(err, errs.Internal, "upload resume"), http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
