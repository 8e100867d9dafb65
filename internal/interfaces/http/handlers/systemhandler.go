package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"

	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
	"helpdesk/internal/shared/version"
)

const serviceName = "helpdesk-api"

// UploadLister is the read side of the upload store.
type UploadLister interface {
	Dir() string
	URL(name string) string
	List(ctx context.Context) ([]storage.FileInfo, error)
}

type SystemHandler struct {
	uploads UploadLister
	readDoc func() (string, error)
	logger  logger.Interface
}

func NewSystemHandler(uploads UploadLister, log logger.Interface) *SystemHandler {
	return &SystemHandler{
		uploads: uploads,
		readDoc: func() (string, error) { return swag.ReadDoc() },
		logger:  log,
	}
}

type HealthResponse struct {
	Status  string    `json:"status" example:"ok"`
	Service string    `json:"service" example:"helpdesk-api"`
	Version string    `json:"version" example:"v1.0.0"`
	Time    time.Time `json:"time"`
}

type UploadedFile struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}

type UploadListResponse struct {
	UploadsDirectory string         `json:"uploadsDirectory"`
	Files            []UploadedFile `json:"files"`
}

// Health handles GET /
//
//	@Summary		Health check
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/ [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: serviceName,
		Version: version.String(),
		Time:    time.Now().UTC(),
	})
}

// DocsJSON handles GET /api/docs-json
//
//	@Summary		Export OpenAPI document as JSON
//	@Tags			system
//	@Produce		json
//	@Success		200
//	@Router			/api/docs-json [get]
func (h *SystemHandler) DocsJSON(c *gin.Context) {
	doc, err := h.readDoc()
	if err != nil {
		h.logger.Errorw("failed to read api document", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="openapi.json"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

// DocsYAML handles GET /api/docs-yaml
//
//	@Summary		Export OpenAPI document as YAML
//	@Tags			system
//	@Produce		plain
//	@Success		200
//	@Router			/api/docs-yaml [get]
func (h *SystemHandler) DocsYAML(c *gin.Context) {
	doc, err := h.readDoc()
	if err != nil {
		h.logger.Errorw("failed to read api document", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	var tree any
	if err := json.Unmarshal([]byte(doc), &tree); err != nil {
		h.logger.Errorw("api document is not valid json", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		h.logger.Errorw("failed to encode api document", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="openapi.yaml"`)
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", out)
}

// ListUploads handles GET /api/uploads/list
//
//	@Summary		List stored uploads
//	@Description	List every file in the upload directory (admin only)
//	@Tags			system
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse{data=UploadListResponse}
//	@Failure		403	{object}	utils.APIResponse	"Forbidden"
//	@Router			/api/uploads/list [get]
func (h *SystemHandler) ListUploads(c *gin.Context) {
	files, err := h.uploads.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list uploads", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := UploadListResponse{
		UploadsDirectory: h.uploads.Dir(),
		Files:            make([]UploadedFile, 0, len(files)),
	}
	for _, f := range files {
		resp.Files = append(resp.Files, UploadedFile{
			Filename: f.Name,
			Size:     f.Size,
			URL:      h.uploads.URL(f.Name),
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
