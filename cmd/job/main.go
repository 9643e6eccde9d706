package main

import (
	"context"
	"fmt"

	"shrinkit_go/internal/config"
	"shrinkit_go/internal/repo"
)

// archives 테이블 생성용 일회성 잡
func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		fmt.Println("SHRINKIT_DATABASE_URL is not set")
		return
	}
	ctx := context.Background()
	pool, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer pool.Close()
	if err := repo.Migrate(ctx, pool); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("archives table ready")
}
