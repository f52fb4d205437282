package server

import (
	"fmt"
	"net/http"

	"github.com/excelytics/excelytics/pkg/accounts"
	"github.com/excelytics/excelytics/pkg/admissions"
	"github.com/excelytics/excelytics/pkg/auth"
	"github.com/excelytics/excelytics/pkg/charts"
	"github.com/excelytics/excelytics/pkg/middleware"
	"github.com/excelytics/excelytics/pkg/realtime"
	"github.com/excelytics/excelytics/pkg/repositories"
	"github.com/excelytics/excelytics/pkg/uploads"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	engine *gin.Engine
	port   int

	accountRepo repositories.IAccountRepository
	tokens      *auth.Issuer
	hub         *realtime.Hub

	accounts   *accounts.Service
	admissions *admissions.Service
	uploads    *uploads.Service
	charts     *charts.Service
}

func New(
	port int,
	useRequestLogger bool,
	accountRepo repositories.IAccountRepository,
	tokens *auth.Issuer,
	hub *realtime.Hub,
	accountsSvc *accounts.Service,
	admissionsSvc *admissions.Service,
	uploadsSvc *uploads.Service,
	chartsSvc *charts.Service,
) *Server {
	r := gin.Default()
	if useRequestLogger {
		logrus.Info("Request logger enabled")
		r.Use(middleware.RequestLoggerMiddleware())
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	s := &Server{
		engine:      r,
		port:        port,
		accountRepo: accountRepo,
		tokens:      tokens,
		hub:         hub,
		accounts:    accountsSvc,
		admissions:  admissionsSvc,
		uploads:     uploadsSvc,
		charts:      chartsSvc,
	}
	s.SetupEndpoints()

	return s
}

func (s *Server) Run() {
	_ = s.engine.Run(fmt.Sprintf(":%d", s.port))
}

// abortWithError maps the error taxonomy to a status and a JSON message.
func abortWithError(c *gin.Context, err error) {
	status := weberrors.Status(err)
	if status == http.StatusInternalServerError {
		logrus.Error(err)
		c.AbortWithStatusJSON(status, gin.H{"message": "Server error"})
		return
	}

	c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
}
