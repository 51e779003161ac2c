package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hakjeomlab/curricheck-backend/internal/config"
	"github.com/hakjeomlab/curricheck-backend/internal/database"
	"github.com/hakjeomlab/curricheck-backend/internal/logger"
	"github.com/hakjeomlab/curricheck-backend/internal/model"
	"github.com/hakjeomlab/curricheck-backend/internal/repository"
)

// referenceRules is the standard prerequisite table for the elective
// curriculum. Upserted so re-running the seeder refreshes existing entries.
var referenceRules = []model.PrereqRule{
	{CourseName: "미적분", Requires: []string{"수학Ⅰ", "수학Ⅱ"}},
	{CourseName: "기하", Requires: []string{"미적분"}},
	{CourseName: "확률과 통계", Requires: []string{"수학Ⅰ"}},
	{CourseName: "경제 수학", Requires: []string{"수학Ⅰ"}},
	{CourseName: "영어권 문화", Requires: []string{"영어Ⅰ"}},
	{CourseName: "진로 영어", Requires: []string{"영어Ⅱ"}},
	{CourseName: "심화 국어", Requires: []string{"독서", "문학"}},
	{CourseName: "고전 읽기", Requires: []string{"문학"}},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	prereqRepo := repository.NewPrereqRepository(pool)

	fmt.Printf("=== Seeding %d prerequisite rules ===\n", len(referenceRules))
	for _, rule := range referenceRules {
		if err := prereqRepo.Upsert(ctx, rule); err != nil {
			log.Fatal().Err(err).Str("course", rule.CourseName).Msg("Failed to seed rule")
		}
		fmt.Printf("  %s ← %v\n", rule.CourseName, rule.Requires)
	}
	fmt.Println("Done")
}
