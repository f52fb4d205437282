package server

import (
	"github.com/excelytics/excelytics/pkg/middleware"
	"github.com/excelytics/excelytics/pkg/models"
)

func (s *Server) SetupEndpoints() {
	authed := middleware.RequireAuth(s.accountRepo, s.tokens)
	adminTier := middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin)
	superAdminOnly := middleware.RequireRole(models.RoleSuperAdmin)

	authGroup := s.engine.Group("/api/auth")
	{
		authGroup.POST("/signup", s.signup)
		authGroup.POST("/login", s.login)
		authGroup.GET("/me", authed, s.getMe)
		authGroup.DELETE("/me", authed, s.deleteMe)
	}

	adminGroup := s.engine.Group("/api/admin", authed, adminTier)
	{
		adminGroup.GET("/users", s.listUsers)
		adminGroup.POST("/create", s.createAccount)
		adminGroup.DELETE("/manage-users/:id", s.deleteAccount)
		adminGroup.GET("/files/:userId", s.listUserFiles)
		adminGroup.DELETE("/files/:userId/:fileId", s.deleteUserFile)
	}

	superAdminGroup := s.engine.Group("/api/super-admin", authed, superAdminOnly)
	{
		superAdminGroup.POST("/create-admin", s.createAdmin)
		superAdminGroup.GET("/pending-admins", s.listPendingAdmins)
		superAdminGroup.PUT("/approve-admin/:id", s.approveAdmin)
		superAdminGroup.DELETE("/reject-admin/:id", s.rejectAdmin)
		superAdminGroup.DELETE("/self-delete/:id", s.selfDeleteAdmin)
		superAdminGroup.GET("/all-users-admins", s.listUsersAndAdmins)
		superAdminGroup.DELETE("/delete/:id", s.deleteAccount)
		superAdminGroup.GET("/files/:userId", s.listUserFiles)
		superAdminGroup.DELETE("/files/:userId/:fileId", s.deleteUserFile)
	}

	filesGroup := s.engine.Group("/api/files", authed)
	{
		filesGroup.POST("/upload", s.uploadFile)
		filesGroup.GET("/history", s.uploadHistory)
		filesGroup.GET("/download/:id", s.downloadFile)
		filesGroup.GET("/parsed/:id", s.parsedFile)
		filesGroup.POST("/summary/:id", s.summarizeFile)
		filesGroup.DELETE("/:id", s.deleteFile)
	}

	chartsGroup := s.engine.Group("/api/charts", authed)
	{
		chartsGroup.POST("", s.saveChart)
		chartsGroup.GET("/file/:fileId", s.listChartsByFile)
		chartsGroup.GET("/:id", s.getChart)
		chartsGroup.DELETE("/:id", s.deleteChart)
	}

	s.engine.GET("/ws", authed, s.websocket)
}
