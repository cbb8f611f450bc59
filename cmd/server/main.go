package main

import (
	"log"

	"github.com/jengzang/trek-backend-go/internal/api"
	"github.com/jengzang/trek-backend-go/internal/config"
	"github.com/jengzang/trek-backend-go/internal/database"
	"github.com/jengzang/trek-backend-go/internal/dataset"
	"github.com/jengzang/trek-backend-go/internal/geo"
	"github.com/jengzang/trek-backend-go/internal/handler"
	"github.com/jengzang/trek-backend-go/internal/ml"
	"github.com/jengzang/trek-backend-go/internal/recommender"
	"github.com/jengzang/trek-backend-go/internal/repository"
	"github.com/jengzang/trek-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	if err := database.Migrate(database.GetDB()); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// 加载步道数据集
	trailRepo := repository.NewTrailRepository(database.GetDB())
	data, err := dataset.Load(trailRepo)
	if err != nil {
		log.Fatal("Failed to load trail dataset:", err)
	}
	log.Printf("Loaded %d trails across %d states", len(data.Trails()), len(data.States()))

	// 加载模型artifacts
	artifacts, err := ml.LoadArtifacts(cfg.ModelDir)
	if err != nil {
		log.Fatal("Failed to load model artifacts:", err)
	}
	log.Printf("Loaded model with %d classes and %d feature columns",
		len(artifacts.Model.Classes()), len(artifacts.Columns))

	// 初始化服务
	geocoder := geo.NewGeocodeClient(cfg.NominatimURL, cfg.GeoUserAgent, cfg.GeoTimeout)
	weather := geo.NewWeatherClient(cfg.OpenMeteoURL, cfg.GeoTimeout)

	assembler := recommender.NewAssembler(data, artifacts)
	ranker := recommender.NewRanker(data, artifacts.Model)
	recommendService := service.NewRecommendService(data, assembler, ranker, geocoder, weather)

	taskRepo := repository.NewEnrichmentTaskRepository(database.GetDB())
	enrichmentService := service.NewEnrichmentService(
		trailRepo, taskRepo, geocoder, weather, 1/cfg.EnrichInterval.Seconds())

	handlers := api.Handlers{
		Recommend:  handler.NewRecommendHandler(recommendService),
		Meta:       handler.NewMetaHandler(data, recommendService),
		Enrichment: handler.NewEnrichmentHandler(enrichmentService),
	}

	// 初始化路由
	router := api.SetupRouter(cfg, handlers)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
