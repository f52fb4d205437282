package models

import "gorm.io/gorm"

// Chart is one saved chart configuration, rendered client-side and
// persisted as a base64 encoded bitmap.
type Chart struct {
	gorm.Model
	AccountID  uint
	Account    Account
	UploadID   uint
	Upload     Upload
	ChartType  string
	XAxis      string
	YAxis      string
	Color      string
	Title      string
	ShowLegend bool
	Image      string
}
