package route

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"terminal-terrace/catalog-service/config"
	_ "terminal-terrace/catalog-service/docs"
	"terminal-terrace/catalog-service/internal/middleware"
	"terminal-terrace/catalog-service/internal/product"
	"terminal-terrace/catalog-service/internal/upstream"
	"terminal-terrace/catalog-service/internal/user"
)

func initRoute(r *gin.Engine, conf *config.AppConfig, db *gorm.DB, log *logrus.Logger) {
	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	banner := conf.Server.Banner
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, banner)
	})

	// 初始化依赖
	httpClient := upstream.NewHTTPClient(conf.Upstream.Timeout)
	identityClient := upstream.NewRandomUserClient(conf.Upstream.RandomUserURL, httpClient)
	catalogClient := upstream.NewCatalogClient(conf.Upstream.ProductsURL, httpClient)

	userService := user.NewUserService(user.NewUserRepository(db), identityClient, conf.Upstream.UserBatch, log)
	productService := product.NewProductService(product.NewProductRepository(db), catalogClient, log)

	// 注册路由
	user.RegisterRoutes(r, user.NewUserHandler(userService))
	product.RegisterRoutes(r, product.NewProductHandler(productService))
}

// SetupRouter 数据库连接由调用方打开并传入
func SetupRouter(conf *config.AppConfig, db *gorm.DB, log *logrus.Logger) *gin.Engine {
	if conf.Server.Mode != "" {
		gin.SetMode(conf.Server.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	// 设置跨域请求，未配置来源时允许所有来源
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(conf.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = conf.CORS.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	initRoute(r, conf, db, log)

	return r
}
