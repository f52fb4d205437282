package server

import (
	"net/http"

	"github.com/excelytics/excelytics/pkg/api/requests"
	"github.com/excelytics/excelytics/pkg/api/responses"
	"github.com/excelytics/excelytics/pkg/middleware"
	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/gin-gonic/gin"
)

func (s *Server) saveChart(c *gin.Context) {
	var req requests.SaveChart
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, weberrors.ErrValidation)
		return
	}

	account := middleware.GetAccount(c)
	chart, err := s.charts.Save(account.ID, &models.Chart{
		UploadID:   req.FileID,
		ChartType:  req.ChartType,
		XAxis:      req.XAxis,
		YAxis:      req.YAxis,
		Color:      req.Color,
		Title:      req.Title,
		ShowLegend: req.ShowLegend,
		Image:      req.Image,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Chart saved successfully",
		"chart":   responses.NewChartInfo(chart),
	})
}

func (s *Server) listChartsByFile(c *gin.Context) {
	fileID, ok := pathID(c, "fileId")
	if !ok {
		return
	}

	account := middleware.GetAccount(c)
	list, err := s.charts.ListByFile(account.ID, fileID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	infos := make([]responses.ChartInfo, 0, len(list))
	for i := range list {
		infos = append(infos, responses.NewChartInfo(&list[i]))
	}
	c.JSON(http.StatusOK, infos)
}

func (s *Server) getChart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	account := middleware.GetAccount(c)
	chart, err := s.charts.Get(account.ID, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewChartInfo(chart))
}

func (s *Server) deleteChart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	account := middleware.GetAccount(c)
	if err := s.charts.Delete(account.ID, id); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.Message{Message: "Chart deleted successfully"})
}
