package rest

import (
	"io"
	"net/http"

	"github.com/dmitrijs2005/droply/internal/server/services"
	"github.com/gin-gonic/gin"
)

type createFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}

func (s *Server) createFolder(c *gin.Context) {
	ctx := c.Request.Context()

	var req createFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	folder, err := s.entries.CreateFolder(ctx, callerID(c), req.Name, req.ParentID)
	if err != nil {
		s.logger.Error(ctx, "create folder failed", "err", err)
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Folder created successfully",
		"folder":  toEntryInfo(folder),
	})
}

func (s *Server) uploadFile(c *gin.Context) {
	ctx := c.Request.Context()
	userID := callerID(c)

	// A body-carried user id must match the verified identity.
	if formUserID := c.PostForm("userId"); formUserID != "" && formUserID != userID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var parentID *string
	if v := c.PostForm("parentId"); v != "" {
		parentID = &v
	}

	var data []byte
	var name, contentType string

	header, err := c.FormFile("file")
	if err == nil {
		f, openErr := header.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
			return
		}
		defer f.Close()

		data, err = io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		name = header.Filename
		contentType = header.Header.Get("Content-Type")
	}

	file, err := s.entries.UploadFile(ctx, userID, services.UploadInput{
		Data:        data,
		Name:        name,
		ContentType: contentType,
		ParentID:    parentID,
	})
	if err != nil {
		s.logger.Error(ctx, "upload failed", "err", err)
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "File uploaded successfully",
		"file":    toEntryInfo(file),
	})
}

func (s *Server) listFiles(c *gin.Context) {
	ctx := c.Request.Context()

	var parentID *string
	if v := c.Query("parentId"); v != "" {
		parentID = &v
	}

	list, err := s.entries.List(ctx, callerID(c), parentID)
	if err != nil {
		s.logger.Error(ctx, "list failed", "err", err)
		errorResponse(c, err)
		return
	}

	infos := make([]EntryInfo, 0, len(list))
	for _, e := range list {
		infos = append(infos, toEntryInfo(e))
	}

	c.JSON(http.StatusOK, gin.H{"files": infos})
}

func (s *Server) deleteFile(c *gin.Context) {
	ctx := c.Request.Context()

	deleted, err := s.entries.Delete(ctx, callerID(c), c.Param("fileId"))
	if err != nil {
		s.logger.Error(ctx, "delete failed", "id", c.Param("fileId"), "err", err)
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "File deleted successfully",
		"deletedFile": toEntryInfo(deleted),
	})
}

func (s *Server) toggleStar(c *gin.Context) {
	ctx := c.Request.Context()

	updated, err := s.entries.ToggleStar(ctx, callerID(c), c.Param("fileId"))
	if err != nil {
		s.logger.Error(ctx, "toggle star failed", "id", c.Param("fileId"), "err", err)
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "file": toEntryInfo(updated)})
}

func (s *Server) toggleTrash(c *gin.Context) {
	ctx := c.Request.Context()

	updated, err := s.entries.ToggleTrash(ctx, callerID(c), c.Param("fileId"))
	if err != nil {
		s.logger.Error(ctx, "toggle trash failed", "id", c.Param("fileId"), "err", err)
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "file": toEntryInfo(updated)})
}

func (s *Server) emptyTrash(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := s.entries.EmptyTrash(ctx, callerID(c))
	if err != nil {
		s.logger.Error(ctx, "empty trash failed", "err", err)
		errorResponse(c, err)
		return
	}

	if count == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No files in trash"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Trash emptied successfully",
		"deleted": count,
	})
}
