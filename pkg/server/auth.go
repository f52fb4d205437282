package server

import (
	"net/http"
	"time"

	"github.com/excelytics/excelytics/pkg/api/requests"
	"github.com/excelytics/excelytics/pkg/api/responses"
	"github.com/excelytics/excelytics/pkg/middleware"
	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/gin-gonic/gin"
)

// signup creates user and super-admin accounts directly; admin signups go
// through the admission workflow and come back with a pending token.
func (s *Server) signup(c *gin.Context) {
	var req requests.Signup
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, weberrors.ErrValidation)
		return
	}

	role := models.NormalizeRole(req.Role)
	if role == "" {
		role = models.RoleUser
	}

	if role.Is(models.RoleAdmin) {
		account, token, err := s.admissions.RequestAdmission(req.Name, req.Email, req.Password)
		if err != nil {
			abortWithError(c, err)
			return
		}

		expiresAt := s.admissions.ExpiresAt(account)
		c.JSON(http.StatusCreated, responses.Signup{
			Message: "Signup successful! Waiting for Super Admin approval.",
			User:    responses.NewAccountInfo(account, &expiresAt),
			Token:   token,
		})
		return
	}

	account, token, err := s.accounts.Signup(req.Name, req.Email, req.Password, role)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, responses.Signup{
		Message: "Signup successful!",
		User:    responses.NewAccountInfo(account, nil),
		Token:   token,
	})
}

func (s *Server) login(c *gin.Context) {
	var req requests.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, weberrors.ErrValidation)
		return
	}

	account, token, err := s.accounts.Login(req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	status := "active"
	var expiresAt *time.Time
	if account.Role.Is(models.RoleAdmin) && !account.Approved {
		status = "pending"
		t := s.admissions.ExpiresAt(account)
		expiresAt = &t
	}

	c.JSON(http.StatusOK, responses.Login{
		Message: "Login successful",
		Token:   token,
		User:    responses.NewAccountInfo(account, expiresAt),
		Status:  status,
	})
}

// getMe lets a pending admin re-derive its remaining time and detect a
// missed approval or rejection.
func (s *Server) getMe(c *gin.Context) {
	account := middleware.GetAccount(c)

	var expiresAt *time.Time
	if account.Role.Is(models.RoleAdmin) && !account.Approved {
		t := s.admissions.ExpiresAt(account)
		expiresAt = &t
	}

	c.JSON(http.StatusOK, responses.NewAccountInfo(account, expiresAt))
}

func (s *Server) deleteMe(c *gin.Context) {
	account := middleware.GetAccount(c)

	if err := s.accounts.DeleteSelf(account.ID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.Message{Message: "Account deleted successfully"})
}
