package server

import (
	"net/http"
	"time"

	"github.com/excelytics/excelytics/pkg/api/requests"
	"github.com/excelytics/excelytics/pkg/api/responses"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/gin-gonic/gin"
)

func (s *Server) createAdmin(c *gin.Context) {
	var req requests.CreateAdmin
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, weberrors.ErrValidation)
		return
	}

	admin, err := s.accounts.CreateApprovedAdmin(req.Name, req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin created successfully",
		"user":    responses.NewAccountInfo(admin, nil),
	})
}

func (s *Server) listPendingAdmins(c *gin.Context) {
	pending, err := s.admissions.ListPending()
	if err != nil {
		abortWithError(c, err)
		return
	}

	infos := make([]responses.AccountInfo, 0, len(pending))
	for i := range pending {
		expiresAt := s.admissions.ExpiresAt(&pending[i])
		infos = append(infos, responses.NewAccountInfo(&pending[i], &expiresAt))
	}
	c.JSON(http.StatusOK, infos)
}

func (s *Server) approveAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	admin, err := s.admissions.Approve(id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var expiresAt *time.Time
	c.JSON(http.StatusOK, gin.H{
		"message": "Admin approved successfully",
		"admin":   responses.NewAccountInfo(admin, expiresAt),
	})
}

func (s *Server) rejectAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.admissions.Reject(id); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.Message{Message: "Admin rejected successfully"})
}

func (s *Server) selfDeleteAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.admissions.SelfExpire(id); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.Message{Message: "Admin deleted due to timeout/rejection"})
}

func (s *Server) listUsersAndAdmins(c *gin.Context) {
	all, err := s.accounts.ListUsersAndAdmins()
	if err != nil {
		abortWithError(c, err)
		return
	}

	infos := make([]responses.AccountInfo, 0, len(all))
	for i := range all {
		infos = append(infos, responses.NewAccountInfo(&all[i], nil))
	}
	c.JSON(http.StatusOK, infos)
}
