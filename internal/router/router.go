package router

import (
	"context"
	"database/sql"
	"net/http"

	_ "dog-adoption-api/docs"
	mem "dog-adoption-api/internal/adapters/storage/memory"
	pg "dog-adoption-api/internal/adapters/storage/postgres"
	"dog-adoption-api/internal/domain/adoptions"
	"dog-adoption-api/internal/domain/breeds"
	"dog-adoption-api/internal/domain/dogs"
	"dog-adoption-api/internal/domain/health"
	"dog-adoption-api/internal/domain/training"
	"dog-adoption-api/internal/middleware"
	"dog-adoption-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Log logger.Logger

	// Opcional: si viene, usa Postgres. Si no, repos en memoria con el
	// dataset de demostración sembrado.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Log != nil {
		r.Use(middleware.RequestLogger(opts.Log))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		dogRepo      dogs.Repository
		breedRepo    breeds.Repository
		adoptionRepo adoptions.Repository
		healthRepo   health.Repository
		trainingRepo training.Repository
	)

	if opts.DB != nil {
		dogRepo = pg.NewDogsRepo(opts.DB)
		breedRepo = pg.NewBreedsRepo(opts.DB)
		adoptionRepo = pg.NewAdoptionsRepo(opts.DB)
		healthRepo = pg.NewHealthRepo(opts.DB)
		trainingRepo = pg.NewTrainingRepo(opts.DB)
	} else {
		dogRepo = mem.NewDogRepo()
		breedRepo = mem.NewBreedRepo()
		adoptionRepo = mem.NewAdoptionRepo()
		healthRepo = mem.NewHealthRepo()
		trainingRepo = mem.NewTrainingRepo()

		if err := mem.Seed(context.Background(), dogRepo, breedRepo, adoptionRepo, healthRepo, trainingRepo); err != nil {
			if opts.Log != nil {
				opts.Log.Error("seed failed", map[string]any{"error": err.Error()})
			}
		}
	}

	// Services por módulo
	dogsSvc := dogs.NewService(dogRepo)
	breedsSvc := breeds.NewService(breedRepo)
	adoptionsSvc := adoptions.NewService(adoptionRepo, dogsSvc)
	healthSvc := health.NewService(healthRepo, dogsSvc)
	trainingSvc := training.NewService(trainingRepo, dogsSvc)

	// Rutas por módulo
	dogs.RegisterRoutes(r, dogsSvc)
	breeds.RegisterRoutes(r, breedsSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc)
	health.RegisterRoutes(r, healthSvc)
	training.RegisterRoutes(r, trainingSvc)

	return r
}
