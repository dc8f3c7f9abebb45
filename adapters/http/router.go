package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Autum7899/My-Portfolio/pkg/auth"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Portfolio *PortfolioHandler
	Auth      *AuthHandler
	Career    *CareerHandler
	Project   *ProjectHandler
	Skill     *SkillHandler
	Profile   *ProfileHandler
	Message   *MessageHandler
	Media     *MediaHandler
	Backup    *BackupHandler
}

// NewRouter wires middleware and routes. The same engine backs the server
// binary and the handler tests.
func NewRouter(h Handlers, jwtSvc *auth.JWTService, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())
	router.Use(ErrorMiddleware(log))

	authMiddleware := AuthMiddleware(jwtSvc)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "UP"})
		})
		api.GET("/portfolio", h.Portfolio.GetPortfolio)
		api.POST("/messages", h.Message.SubmitMessage)

		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", h.Auth.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.POST("/career", h.Career.CreateCareer)
				adminPrivate.PUT("/career", h.Career.UpdateCareer)
				adminPrivate.DELETE("/career", h.Career.DeleteCareer)

				adminPrivate.POST("/projects", h.Project.CreateProject)
				adminPrivate.PUT("/projects", h.Project.UpdateProject)
				adminPrivate.DELETE("/projects", h.Project.DeleteProject)

				adminPrivate.POST("/skills", h.Skill.CreateSkill)
				adminPrivate.PUT("/skills", h.Skill.UpdateSkill)
				adminPrivate.DELETE("/skills", h.Skill.DeleteSkill)

				adminPrivate.PUT("/profile", h.Profile.UpdateProfile)

				adminPrivate.POST("/media", h.Media.UploadMedia)
				adminPrivate.POST("/backup", h.Backup.CreateBackup)
			}
		}
	}

	return router
}
