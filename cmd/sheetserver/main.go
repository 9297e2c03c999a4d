// Package main provides the sheet server binary: a gRPC service for
// character sheet resolution backed by PostgreSQL and YAML content.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/config"
	"github.com/soren-hale/charforge/internal/game/rules"
	"github.com/soren-hale/charforge/internal/observability"
	"github.com/soren-hale/charforge/internal/scripting"
	"github.com/soren-hale/charforge/internal/server"
	"github.com/soren-hale/charforge/internal/sheetserver"
	sheetv1 "github.com/soren-hale/charforge/internal/sheetserver/sheetv1"
	"github.com/soren-hale/charforge/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting sheet server",
		zap.String("grpc_addr", cfg.Server.Addr()),
	)

	// Load content catalog
	catStart := time.Now()
	cat, err := catalog.Load(catalog.Dirs{
		Classes:         cfg.Content.ClassesDir,
		Feats:           cfg.Content.FeatsDir,
		Spells:          cfg.Content.SpellsDir,
		Specializations: cfg.Content.SpecializationsDir,
		Skills:          cfg.Content.SkillsDir,
	})
	if err != nil {
		logger.Fatal("loading content catalog", zap.Error(err))
	}
	logger.Info("content catalog loaded",
		zap.Int("classes", len(cat.Classes())),
		zap.Int("spells", len(cat.Spells())),
		zap.Int("skills", len(cat.Skills())),
		zap.Duration("elapsed", time.Since(catStart)),
	)

	// Connect to PostgreSQL for character persistence
	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Duration("elapsed", time.Since(dbStart)),
	)
	charRepo := postgres.NewCharacterRepository(pool.DB())
	acctRepo := postgres.NewAccountRepository(pool.DB())

	// Availability predicates run in a sandboxed Lua VM.
	evaluator := scripting.NewEvaluator(cfg.Rules.ScriptInstructionLimit, logger)
	eligibility := rules.NewEligibility(cat, evaluator)

	boostCfg := rules.BoostConfig{GradualExclusion: cfg.Rules.ExclusionMode()}

	grpcService := sheetserver.NewSheetServiceServer(
		cat, charRepo, acctRepo, eligibility, boostCfg, cfg.Rules.OverLimitPolicy(), logger,
	)

	grpcServer := grpc.NewServer()
	sheetv1.RegisterSheetServiceServer(grpcServer, grpcService)

	// Wire lifecycle
	lifecycle := server.NewLifecycle(logger)

	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func() error {
			lis, err := net.Listen("tcp", cfg.Server.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.Server.Addr(), err)
			}
			logger.Info("gRPC server listening",
				zap.String("addr", lis.Addr().String()),
			)
			return grpcServer.Serve(lis)
		},
		StopFn: func() {
			grpcServer.GracefulStop()
		},
	})

	lifecycle.Add("postgres", &server.FuncService{
		StartFn: func() error {
			for {
				time.Sleep(30 * time.Second)
				if err := pool.Health(ctx, 5*time.Second); err != nil {
					logger.Warn("database health check failed", zap.Error(err))
				}
			}
		},
		StopFn: func() {
			pool.Close()
		},
	})

	logger.Info("sheet server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("grpc_addr", cfg.Server.Addr()),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
