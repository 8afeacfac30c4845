package routes

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tnqbao/gau-dam-service/http/controller"
	middlewares "github.com/tnqbao/gau-dam-service/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)
	r.Use(otelgin.Middleware(ctrl.Config.EnvConfig.Grafana.ServiceName))

	apiRoutes := r.Group("/api")
	{
		apiRoutes.GET("/health", ctrl.HealthCheck)

		assetRoutes := apiRoutes.Group("/assets")
		{
			assetRoutes.GET("/", ctrl.ListAssets)
			assetRoutes.GET("/:id", ctrl.GetAssetByID)
			assetRoutes.GET("/:id/checklist", ctrl.GetAssetChecklist)
			assetRoutes.GET("/upload/:batch_id/progress", ctrl.GetUploadProgress)

			assetRoutes.POST("/", middles.AuthMiddleware, ctrl.CreateAsset)
			assetRoutes.POST("/upload", middles.AuthMiddleware, ctrl.UploadAssets)
			assetRoutes.PATCH("/:id", middles.AuthMiddleware, ctrl.UpdateAsset)
			assetRoutes.PATCH("/:id/status", middles.AuthMiddleware, ctrl.UpdateAssetStatus)
			assetRoutes.PATCH("/checklist/:item_id", middles.AuthMiddleware, ctrl.ToggleAssetChecklistItem)
			assetRoutes.DELETE("/:id", middles.AuthMiddleware, ctrl.DeleteAsset)
		}

		productRoutes := apiRoutes.Group("/products")
		{
			productRoutes.GET("/", ctrl.ListProducts)
			productRoutes.GET("/:id", ctrl.GetProductByID)
			productRoutes.GET("/:id/checklist", ctrl.GetProductChecklist)

			productRoutes.POST("/", middles.AuthMiddleware, ctrl.CreateProduct)
			productRoutes.PATCH("/:id", middles.AuthMiddleware, ctrl.UpdateProduct)
			productRoutes.PATCH("/:id/status", middles.AuthMiddleware, ctrl.UpdateProductStatus)
			productRoutes.PATCH("/checklist/:item_id", middles.AuthMiddleware, ctrl.ToggleProductChecklistItem)
			productRoutes.DELETE("/:id", middles.AuthMiddleware, ctrl.DeleteProduct)
		}

		tagRoutes := apiRoutes.Group("/tags")
		{
			tagRoutes.GET("/", ctrl.SuggestTags)
			tagRoutes.POST("/attach", middles.AuthMiddleware, ctrl.AttachTag)
			tagRoutes.DELETE("/attach", middles.AuthMiddleware, ctrl.DetachTag)
		}
	}

	return r
}
