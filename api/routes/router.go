package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KairamCabral/terravik-sub003/api/controllers"
	calculatorcontrollers "github.com/KairamCabral/terravik-sub003/api/controllers/calculator"
	subscriptioncontrollers "github.com/KairamCabral/terravik-sub003/api/controllers/subscription"
	"github.com/KairamCabral/terravik-sub003/api/middleware"
	"github.com/KairamCabral/terravik-sub003/pkg/config"
	"github.com/KairamCabral/terravik-sub003/pkg/logger"
	"github.com/KairamCabral/terravik-sub003/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	dosageService calculatorcontrollers.RecommendService,
	pricingService subscriptioncontrollers.QuoteService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/subscription/pricing", func(r chi.Router) {
			r.Post("/", subscriptioncontrollers.Calculate(pricingService, logg))
			r.Get("/", subscriptioncontrollers.Options())
		})

		r.Route("/calculator", func(r chi.Router) {
			r.Post("/", calculatorcontrollers.Recommend(dosageService, logg))
			r.Get("/products", calculatorcontrollers.Products())
		})
	})

	return r
}
