// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/http/handlers"
	"farecast/internal/http/middleware"
	"farecast/internal/modules/favorites"
	"farecast/internal/modules/history"
	"farecast/internal/modules/location"
	"farecast/internal/modules/prefs"
	"farecast/internal/modules/profile"
	"farecast/internal/modules/quote"
	"farecast/internal/modules/reports"
)

type RouterDeps struct {
	Quotes    *quote.Service
	Locations *location.Service
	Favorites *favorites.Service
	History   *history.Service
	Prefs     *prefs.Service
	Profile   *profile.Service
	Reports   *reports.Service
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	api := r.Group("/api")

	quoteHandler := handlers.NewQuoteHandler(deps.Quotes)
	api.POST("/quotes", quoteHandler.Compare)

	locationHandler := handlers.NewLocationHandler(deps.Locations)
	api.GET("/locations/suggest", locationHandler.Suggest)
	api.GET("/locations/reverse", locationHandler.Reverse)
	api.GET("/locations/search", locationHandler.Search)

	favoritesHandler := handlers.NewFavoritesHandler(deps.Favorites)
	api.GET("/favorites", favoritesHandler.List)
	api.POST("/favorites", favoritesHandler.Save)
	api.DELETE("/favorites/:id", favoritesHandler.Remove)
	api.GET("/favorites/check", favoritesHandler.Check)

	historyHandler := handlers.NewHistoryHandler(deps.History)
	api.GET("/history", historyHandler.List)
	api.DELETE("/history", historyHandler.Clear)

	prefsHandler := handlers.NewPrefsHandler(deps.Prefs)
	api.GET("/prefs", prefsHandler.Get)
	api.PUT("/prefs", prefsHandler.Update)

	profileHandler := handlers.NewProfileHandler(deps.Profile)
	api.GET("/profile", profileHandler.Get)
	api.PUT("/profile", profileHandler.Save)

	reportsHandler := handlers.NewReportsHandler(deps.Reports)
	api.POST("/reports", reportsHandler.Submit)
	api.GET("/reports", reportsHandler.List)
	api.GET("/reports/summary", reportsHandler.Summary)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
