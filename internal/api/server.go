package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/festivalhub/festivalhub-api/docs"
	v1 "github.com/festivalhub/festivalhub-api/internal/api/handler/v1"
	"github.com/festivalhub/festivalhub-api/internal/api/middleware"
	"github.com/festivalhub/festivalhub-api/internal/config"
	"github.com/festivalhub/festivalhub-api/internal/repository"
	"github.com/festivalhub/festivalhub-api/internal/repository/dao"
	"github.com/festivalhub/festivalhub-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	healthcheckHandler *v1.HealthcheckHandler
	authHandler        *v1.AuthHandler
	festivalHandler    *v1.FestivalHandler
	adminHandler       *v1.AdminFestivalHandler
	favoriteHandler    *v1.FavoriteHandler
	inboxHandler       *v1.InboxHandler
	profileHandler     *v1.ProfileHandler
}

func NewServer(conf *config.AppConfig, gormDB *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)

	s := &Server{
		Config: conf,
		Router: gin.New(),
	}

	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(conf.API.AllowedCORSDomains))

	s.initHandlers(gormDB)
	s.mountHandlers()

	return s
}

func (s *Server) initHandlers(gormDB *gorm.DB) {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(gormDB))
	festivalRepo := repository.NewFestivalRepository(dao.NewFestivalDAO(gormDB))
	favoriteRepo := repository.NewFavoriteRepository(dao.NewFavoriteDAO(gormDB))
	inboxRepo := repository.NewInboxRepository(dao.NewInboxDAO(gormDB))

	festivalSvc := service.NewFestivalService(festivalRepo)

	s.healthcheckHandler = v1.NewHealthcheckHandler()
	s.authHandler = v1.NewAuthHandler(s.Config.API.JWTSigningKey, service.NewAuthService(userRepo))
	s.festivalHandler = v1.NewFestivalHandler(festivalSvc)
	s.adminHandler = v1.NewAdminFestivalHandler(festivalSvc)
	s.favoriteHandler = v1.NewFavoriteHandler(service.NewFavoriteService(favoriteRepo, festivalRepo))
	s.inboxHandler = v1.NewInboxHandler(service.NewInboxService(inboxRepo))
	s.profileHandler = v1.NewProfileHandler(service.NewUserService(userRepo, favoriteRepo, inboxRepo))
}

func (s *Server) mountHandlers() {
	const basePath = "/api/v1"

	s.Router.GET("/healthcheck", s.healthcheckHandler.HandleHealthcheck)

	docs.SwaggerInfo.BasePath = basePath
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := s.Router.Group(basePath)

	root.POST("/auth/signup", s.authHandler.HandleSignup)
	root.POST("/auth/login", s.authHandler.HandleLogin)

	root.GET("/festivals", s.festivalHandler.HandleListFestivals)
	root.GET("/festivals/:festivalID", s.festivalHandler.HandleGetFestival)

	authed := root.Group("")
	authed.Use(middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())

	authed.GET("/favorites", s.favoriteHandler.HandleListFavorites)
	authed.POST("/festivals/:festivalID/favorite", s.favoriteHandler.HandleAddFavorite)
	authed.DELETE("/festivals/:festivalID/favorite", s.favoriteHandler.HandleRemoveFavorite)

	authed.GET("/inbox", s.inboxHandler.HandleListMessages)
	authed.POST("/inbox", s.inboxHandler.HandleInboxAction)
	authed.POST("/inbox/:messageID", s.inboxHandler.HandleMessageAction)
	authed.DELETE("/inbox/:messageID", s.inboxHandler.HandleDeleteMessage)

	authed.GET("/profile", s.profileHandler.HandleGetProfile)
	authed.PUT("/profile", s.profileHandler.HandleUpdateProfile)

	admin := authed.Group("/admin")
	admin.GET("/festivals", s.adminHandler.HandleListFestivals)
	admin.POST("/festivals", s.adminHandler.HandleCreateFestival)
	admin.GET("/festivals/:festivalID", s.adminHandler.HandleGetFestival)
	admin.PUT("/festivals/:festivalID", s.adminHandler.HandleUpdateFestival)
	admin.DELETE("/festivals/:festivalID", s.adminHandler.HandleDeleteFestival)
}
