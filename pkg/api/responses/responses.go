package responses

import (
	"time"

	"github.com/excelytics/excelytics/pkg/models"
)

type AccountInfo struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Approved  bool        `json:"isApproved"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt *time.Time  `json:"expiresAt"`
}

// NewAccountInfo projects an account for the wire; expiresAt is filled only
// for pending admins, everyone else reports null.
func NewAccountInfo(account *models.Account, expiresAt *time.Time) AccountInfo {
	return AccountInfo{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		Approved:  account.Approved,
		CreatedAt: account.CreatedAt,
		ExpiresAt: expiresAt,
	}
}

type Signup struct {
	Message string      `json:"message"`
	User    AccountInfo `json:"user"`
	Token   string      `json:"token"`
}

type Login struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    AccountInfo `json:"user"`
	Status  string      `json:"status"`
}

type Message struct {
	Message string `json:"message"`
}

type UploadInfo struct {
	ID           uint      `json:"id"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"contentType"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

func NewUploadInfo(upload *models.Upload) UploadInfo {
	return UploadInfo{
		ID:           upload.ID,
		OriginalName: upload.OriginalName,
		Size:         upload.Size,
		ContentType:  upload.ContentType,
		UploadedAt:   upload.CreatedAt,
	}
}

type ParsedFile struct {
	Data []map[string]string `json:"data"`
}

type Summary struct {
	Insights []string `json:"insights"`
}

type ChartInfo struct {
	ID         uint      `json:"id"`
	FileID     uint      `json:"fileId"`
	ChartType  string    `json:"chartType"`
	XAxis      string    `json:"xAxis"`
	YAxis      string    `json:"yAxis"`
	Color      string    `json:"color"`
	Title      string    `json:"title"`
	ShowLegend bool      `json:"showLegend"`
	Image      string    `json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewChartInfo(chart *models.Chart) ChartInfo {
	return ChartInfo{
		ID:         chart.ID,
		FileID:     chart.UploadID,
		ChartType:  chart.ChartType,
		XAxis:      chart.XAxis,
		YAxis:      chart.YAxis,
		Color:      chart.Color,
		Title:      chart.Title,
		ShowLegend: chart.ShowLegend,
		Image:      chart.Image,
		CreatedAt:  chart.CreatedAt,
	}
}
