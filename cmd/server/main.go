package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"shrinkit_go/internal/config"
	"shrinkit_go/internal/handler"
	"shrinkit_go/internal/repo"
	"shrinkit_go/internal/router"
	"shrinkit_go/internal/service"
	"shrinkit_go/pkg/logger"
)

func main() {
	// 설정/로거 초기화
	cfg := config.Load()
	logg := logger.New("server", cfg.LogLevel)

	// 의존성 생성 (DSN 없으면 메모리 저장소)
	archiveRepo := repo.NewArchiveRepoInMemory()
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
		archiveRepo = repo.NewArchiveRepoPostgres(pool)
		logg.Infof("using postgres archive store")
	}
	archiveSvc := service.NewArchiveService(archiveRepo, logg)
	archiveH := handler.NewArchiveHandler(archiveSvc, cfg.FoldCase, cfg.MaxBodyBytes)

	// Gin 라우터 생성 및 라우팅 구성
	r := gin.Default()
	router.Register(r, router.Dependencies{
		ArchiveHandler: archiveH,
	})

	addr := ":" + cfg.Port
	logg.Infof("starting server at %s", addr)
	if err := r.Run(addr); err != nil {
		logg.Errorf("server stopped: %v", err)
	}
}
