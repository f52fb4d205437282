package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLoggerMiddleware dumps request bodies while debugging. Multipart
// uploads are skipped so spreadsheet bytes never hit the log.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() == "multipart/form-data" {
			logrus.Debugf("%s %s (multipart body skipped)", c.Request.Method, c.Request.URL.Path)
		} else {
			var buf bytes.Buffer
			tee := io.TeeReader(c.Request.Body, &buf)
			body, _ := io.ReadAll(tee)
			c.Request.Body = io.NopCloser(&buf)
			logrus.Debugf("%s %s body: %s", c.Request.Method, c.Request.URL.Path, string(body))
		}

		c.Next()
	}
}
