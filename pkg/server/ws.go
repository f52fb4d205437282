package server

import (
	"github.com/excelytics/excelytics/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// websocket joins the caller to its own room. The token rides in the query
// string because browsers cannot set headers on the upgrade request.
func (s *Server) websocket(c *gin.Context) {
	account := middleware.GetAccount(c)

	if err := s.hub.Serve(c.Writer, c.Request, account.ID); err != nil {
		logrus.Error(err)
	}
}
