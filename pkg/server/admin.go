package server

import (
	"net/http"
	"strconv"

	"github.com/excelytics/excelytics/pkg/api/requests"
	"github.com/excelytics/excelytics/pkg/api/responses"
	"github.com/excelytics/excelytics/pkg/middleware"
	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		abortWithError(c, weberrors.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.accounts.ListUsers()
	if err != nil {
		abortWithError(c, err)
		return
	}

	infos := make([]responses.AccountInfo, 0, len(users))
	for i := range users {
		infos = append(infos, responses.NewAccountInfo(&users[i], nil))
	}
	c.JSON(http.StatusOK, infos)
}

func (s *Server) createAccount(c *gin.Context) {
	var req requests.CreateAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, weberrors.ErrValidation)
		return
	}

	creator := middleware.GetAccount(c)
	account, err := s.accounts.CreateAccount(creator, req.Name, req.Email, req.Password, models.NormalizeRole(req.Role))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"account": responses.NewAccountInfo(account, nil),
	})
}

func (s *Server) deleteAccount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.accounts.DeleteAccount(id); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.Message{Message: "Account deleted successfully"})
}

func (s *Server) listUserFiles(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	files, err := s.uploads.ListFor(userID)
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

func (s *Server) deleteUserFile(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	fileID, ok := pathID(c, "fileId")
	if !ok {
		return
	}

	if err := s.uploads.DeleteOwned(c.Request.Context(), userID, fileID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully", "id": fileID})
}
