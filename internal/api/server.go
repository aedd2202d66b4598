package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/bolaohub/bolao-api/docs"
	v1 "github.com/bolaohub/bolao-api/internal/api/handler/v1"
	"github.com/bolaohub/bolao-api/internal/api/middleware"
	"github.com/bolaohub/bolao-api/internal/config"
	"github.com/bolaohub/bolao-api/internal/pkg/asaas"
	"github.com/bolaohub/bolao-api/internal/repository"
	"github.com/bolaohub/bolao-api/internal/repository/dao"
	"github.com/bolaohub/bolao-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userSvc := s.initUserService(db)

	liveHandler := v1.NewLiveHandler(userSvc)
	go liveHandler.Run()

	authHandler := s.initAuthHandler(db)
	userHandler := v1.NewUserHandler(userSvc)
	contestHandler := s.initContestHandler(db, userSvc)
	drawHandler := s.initDrawHandler(db, userSvc, liveHandler)
	participationHandler := s.initParticipationHandler(db, userSvc)
	paymentHandler := s.initPaymentHandler(db, userSvc)
	discountHandler := s.initDiscountHandler(db, userSvc)
	rankingHandler := s.initRankingHandler(db)

	s.MountHandlers(
		authHandler,
		userHandler,
		contestHandler,
		drawHandler,
		participationHandler,
		paymentHandler,
		discountHandler,
		rankingHandler,
		liveHandler,
	)

	return s
}

func (s *Server) initUserService(db *gorm.DB) *service.UserService {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)

	return service.NewUserService(repo)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initContestHandler(db *gorm.DB, userSvc *service.UserService) *v1.ContestHandler {
	contestRepo := repository.NewContestRepository(dao.NewContestDAO(db))
	drawRepo := repository.NewDrawRepository(dao.NewDrawDAO(db))
	svc := service.NewContestService(contestRepo, drawRepo)
	handler := v1.NewContestHandler(svc, userSvc)

	return handler
}

func (s *Server) initDrawHandler(db *gorm.DB, userSvc *service.UserService, notifier service.DrawNotifier) *v1.DrawHandler {
	drawRepo := repository.NewDrawRepository(dao.NewDrawDAO(db))
	contestRepo := repository.NewContestRepository(dao.NewContestDAO(db))
	svc := service.NewDrawService(drawRepo, contestRepo, notifier)
	handler := v1.NewDrawHandler(svc, userSvc)

	return handler
}

func (s *Server) initParticipationHandler(db *gorm.DB, userSvc *service.UserService) *v1.ParticipationHandler {
	participationRepo := repository.NewParticipationRepository(dao.NewParticipationDAO(db))
	contestRepo := repository.NewContestRepository(dao.NewContestDAO(db))
	svc := service.NewParticipationService(participationRepo, contestRepo)
	handler := v1.NewParticipationHandler(svc, userSvc)

	return handler
}

func (s *Server) initPaymentHandler(db *gorm.DB, userSvc *service.UserService) *v1.PaymentHandler {
	paymentRepo := repository.NewPaymentRepository(dao.NewPaymentDAO(db))
	participationRepo := repository.NewParticipationRepository(dao.NewParticipationDAO(db))
	contestRepo := repository.NewContestRepository(dao.NewContestDAO(db))
	discountRepo := repository.NewDiscountRepository(dao.NewDiscountDAO(db))
	gateway := asaas.NewClient(s.Config.Asaas.BaseURL, s.Config.Asaas.APIKey)
	svc := service.NewPaymentService(paymentRepo, participationRepo, contestRepo, discountRepo, gateway)
	handler := v1.NewPaymentHandler(s.Config.Asaas, svc, userSvc)

	return handler
}

func (s *Server) initDiscountHandler(db *gorm.DB, userSvc *service.UserService) *v1.DiscountHandler {
	discountRepo := repository.NewDiscountRepository(dao.NewDiscountDAO(db))
	svc := service.NewDiscountService(discountRepo)
	handler := v1.NewDiscountHandler(svc, userSvc)

	return handler
}

func (s *Server) initRankingHandler(db *gorm.DB) *v1.RankingHandler {
	contestRepo := repository.NewContestRepository(dao.NewContestDAO(db))
	drawRepo := repository.NewDrawRepository(dao.NewDrawDAO(db))
	participationRepo := repository.NewParticipationRepository(dao.NewParticipationDAO(db))
	paymentRepo := repository.NewPaymentRepository(dao.NewPaymentDAO(db))
	svc := service.NewRankingService(contestRepo, drawRepo, participationRepo, paymentRepo)
	handler := v1.NewRankingHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	contestHandler *v1.ContestHandler,
	drawHandler *v1.DrawHandler,
	participationHandler *v1.ParticipationHandler,
	paymentHandler *v1.PaymentHandler,
	discountHandler *v1.DiscountHandler,
	rankingHandler *v1.RankingHandler,
	liveHandler *v1.LiveHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		// The gateway authenticates with X-Webhook-Token, not a JWT.
		public.POST("/payments/webhook", paymentHandler.HandleWebhook)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/users", userHandler.HandleListUsers)
		authenticated.GET("/users/me", userHandler.HandleGetMe)
		authenticated.GET("/users/:userID", userHandler.HandleGetUser)

		authenticated.GET("/contests", contestHandler.HandleListContests)
		authenticated.POST("/contests", contestHandler.HandleCreateContest)
		authenticated.GET("/contests/:contestID", contestHandler.HandleGetContest)
		authenticated.PUT("/contests/:contestID", contestHandler.HandleUpdateContest)
		authenticated.PATCH("/contests/:contestID/status", contestHandler.HandleChangeContestStatus)

		authenticated.GET("/contests/:contestID/draws", drawHandler.HandleListDraws)
		authenticated.POST("/contests/:contestID/draws", drawHandler.HandlePublishDraw)
		authenticated.DELETE("/draws/:drawID", drawHandler.HandleDeleteDraw)

		authenticated.GET("/participations", participationHandler.HandleListMyParticipations)
		authenticated.POST("/participations", participationHandler.HandleCreateParticipation)
		authenticated.POST("/participations/:participationID/cancel", participationHandler.HandleCancelParticipation)
		authenticated.GET("/contests/:contestID/participations", participationHandler.HandleListContestParticipations)

		authenticated.GET("/payments", paymentHandler.HandleListMyPayments)
		authenticated.POST("/payments/charge", paymentHandler.HandleCreateCharge)

		authenticated.GET("/discounts", discountHandler.HandleListDiscounts)
		authenticated.POST("/discounts", discountHandler.HandleCreateDiscount)
		authenticated.POST("/discounts/preview", discountHandler.HandlePreviewDiscount)
		authenticated.DELETE("/discounts/:code", discountHandler.HandleDeactivateDiscount)

		authenticated.GET("/contests/:contestID/ranking", rankingHandler.HandleGetRanking)
		authenticated.GET("/contests/:contestID/ranking/export", rankingHandler.HandleExportRankingCSV)
		authenticated.GET("/contests/:contestID/live", liveHandler.HandleLive)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Bolão API"
	docs.SwaggerInfo.Description = "Contest, ticket and prize distribution API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
