package server

import (
	"fmt"
	"net/http"

	"github.com/excelytics/excelytics/pkg/api/responses"
	"github.com/excelytics/excelytics/pkg/middleware"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/gin-gonic/gin"
)

func (s *Server) uploadFile(c *gin.Context) {
	account := middleware.GetAccount(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: no file uploaded", weberrors.ErrValidation))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	upload, err := s.uploads.Store(c.Request.Context(), account.ID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, responses.NewUploadInfo(upload))
}

func (s *Server) uploadHistory(c *gin.Context) {
	account := middleware.GetAccount(c)

	files, err := s.uploads.History(account.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	infos := make([]responses.UploadInfo, 0, len(files))
	for i := range files {
		infos = append(infos, responses.NewUploadInfo(&files[i]))
	}
	c.JSON(http.StatusOK, infos)
}

func (s *Server) downloadFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	account := middleware.GetAccount(c)
	upload, data, err := s.uploads.Retrieve(c.Request.Context(), id, account)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", upload.OriginalName))
	c.Data(http.StatusOK, upload.ContentType, data)
}

func (s *Server) parsedFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	account := middleware.GetAccount(c)
	_, rows, err := s.uploads.Parse(c.Request.Context(), id, account)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.ParsedFile{Data: rows})
}

func (s *Server) summarizeFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	account := middleware.GetAccount(c)
	insights, err := s.uploads.Summarize(c.Request.Context(), id, account)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.Summary{Insights: insights})
}

func (s *Server) deleteFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	account := middleware.GetAccount(c)
	if err := s.uploads.Delete(c.Request.Context(), id, account); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully", "id": id})
}
