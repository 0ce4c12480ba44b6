package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/droply/internal/common"
	"github.com/dmitrijs2005/droply/internal/server/models"
	"github.com/gin-gonic/gin"
)

// EntryInfo is the JSON shape of a folder/file entry.
type EntryInfo struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	Type         string    `json:"type"`
	FileURL      string    `json:"fileUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	ParentID     *string   `json:"parentId"`
	IsFolder     bool      `json:"isFolder"`
	IsStarred    bool      `json:"isStarred"`
	IsTrash      bool      `json:"isTrash"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toEntryInfo(e *models.Entry) EntryInfo {
	info := EntryInfo{
		ID:           e.ID,
		UserID:       e.UserID,
		Name:         e.Name,
		Path:         e.Path,
		Size:         e.Size,
		Type:         e.ContentType,
		FileURL:      e.FileURL,
		ThumbnailURL: e.ThumbnailURL,
		ParentID:     e.ParentID,
		IsFolder:     e.IsFolder,
		IsStarred:    e.IsStarred,
		IsTrash:      e.IsTrash,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.IsFolder {
		info.Type = "folder"
	}
	return info
}

// errorResponse maps service errors onto HTTP statuses. Blob-delete failures
// never reach here; they are swallowed inside the lifecycle service.
func errorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorInvalidName),
		errors.Is(err, common.ErrorFileRequired),
		errors.Is(err, common.ErrorFileTooLarge),
		errors.Is(err, common.ErrorUnsupportedType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, common.ErrorParentNotFound),
		errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
