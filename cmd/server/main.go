package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	httpadapter "survivalcraft/internal/adapter/http"
	metricsinmem "survivalcraft/internal/adapter/metrics/inmemory"
	boltrepo "survivalcraft/internal/adapter/repo/bolt"
	gormrepo "survivalcraft/internal/adapter/repo/gorm"
	"survivalcraft/internal/adapter/repo/memory"
	"survivalcraft/internal/app/action"
	"survivalcraft/internal/app/navigate"
	"survivalcraft/internal/app/observe"
	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/app/replay"
	"survivalcraft/internal/app/saves"
	"survivalcraft/internal/app/session"
	"survivalcraft/internal/app/status"
	"survivalcraft/internal/app/worldgen"
	"survivalcraft/internal/domain/mapgen"
	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, txManager, closeRepo := mustBuildRepos(ctx)
	defer closeRepo()

	sess := session.New(sessionConfigFromEnv())
	params := mapParamsFromEnv()
	kpiRecorder := metricsinmem.NewRecorder()
	journal := memory.NewEventRepo(memory.NewStore(), intEnv("EVENT_JOURNAL_CAPACITY", memory.DefaultEventCapacity))

	h := httpadapter.Handler{
		ObserveUC:  observe.UseCase{Session: sess},
		StatusUC:   status.UseCase{Session: sess},
		ActionUC:   action.UseCase{Session: sess, Metrics: kpiRecorder, Events: journal, Now: time.Now},
		PathUC:     navigate.UseCase{Session: sess},
		GenerateUC: worldgen.UseCase{Session: sess, Base: params},
		SaveUC:     saves.SaveUseCase{Session: sess, Repo: repo, TxManager: txManager},
		LoadUC:     saves.LoadUseCase{Session: sess, Repo: repo, TxManager: txManager, NewID: uuid.NewString},
		ListUC:     saves.ListUseCase{Repo: repo},
		DeleteUC:   saves.DeleteUseCase{Repo: repo, TxManager: txManager},
		ReplayUC:   replay.UseCase{Events: journal},
		KPI:        kpiRecorder,

		GenerateTimeout: time.Duration(intEnv("GENERATE_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	mustStartWorld(ctx, h, strings.TrimSpace(os.Getenv("WORLD_LOAD")), envOr("WORLD_NAME", "world"))
	go runVitalsClock(ctx, sess, time.Duration(intEnv("TICK_MILLIS", int(survival.DefaultTickInterval/time.Millisecond)))*time.Millisecond)

	addr := envOr("SURVIVALCRAFT_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("survivalcraft server listening on %s", addr)
	s.Spin()
}

func mustBuildRepos(ctx context.Context) (ports.SaveRepository, ports.TxManager, func()) {
	if dsn := strings.TrimSpace(os.Getenv("SURVIVALCRAFT_DB_DSN")); dsn != "" {
		db, err := gormrepo.OpenSaveDB(ctx, dsn, gormrepo.PoolConfig{
			MaxOpenConns: intEnv("SURVIVALCRAFT_DB_MAX_CONNS", 0),
		})
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		applied, err := gormrepo.ApplyMigrations(ctx, db, envOr("SURVIVALCRAFT_MIGRATIONS", "./migrations"))
		if err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
		if len(applied) > 0 {
			hlog.Infof("applied save migrations: %s", strings.Join(applied, ", "))
		}
		return gormrepo.NewSaveRepo(db), gormrepo.NewTxManager(db), func() {
			if err := gormrepo.CloseSaveDB(db); err != nil {
				log.Printf("close postgres: %v", err)
			}
		}
	}

	db, err := boltrepo.Open(envOr("SURVIVALCRAFT_SAVE_PATH", "survivalcraft.db"))
	if err != nil {
		log.Fatalf("open save file: %v", err)
	}
	return boltrepo.NewSaveRepo(db), boltrepo.NewTxManager(db), func() {
		if err := db.Close(); err != nil {
			log.Printf("close save file: %v", err)
		}
	}
}

// mustStartWorld loads the named save when one is given and generates a
// fresh world otherwise.
func mustStartWorld(ctx context.Context, h httpadapter.Handler, load, name string) {
	if load != "" {
		resp, err := h.LoadUC.Execute(ctx, saves.LoadRequest{Name: load})
		if err != nil {
			log.Fatalf("load world %q: %v", load, err)
		}
		log.Printf("loaded world %q (%d records skipped)", resp.Save.WorldName, resp.Skipped)
		return
	}
	resp, err := h.GenerateUC.Execute(ctx, worldgen.Request{Name: name})
	if err != nil {
		log.Fatalf("generate world: %v", err)
	}
	log.Printf("generated world %q seed=%d spawn=(%d,%d)", resp.WorldName, resp.Report.Seed, resp.Spawn.X, resp.Spawn.Y)
}

// runVitalsClock advances hunger and health with the wall clock until ctx
// ends.
func runVitalsClock(ctx context.Context, sess *session.Session, interval time.Duration) {
	if interval <= 0 {
		interval = survival.DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	reportedDeath := false
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sess.Advance(now.Sub(last))
			last = now
			_, stats := sess.Player()
			if stats.Dead && !reportedDeath {
				hlog.Warnf("player died: cause=%s", stats.DeathCause)
			}
			reportedDeath = stats.Dead
		}
	}
}

func sessionConfigFromEnv() session.Config {
	cfg := session.DefaultConfig()
	cfg.InventoryCapacity = intEnv("INVENTORY_CAPACITY", cfg.InventoryCapacity)
	cfg.AnimalCount = intEnv("ANIMAL_COUNT", cfg.AnimalCount)
	cfg.ReachTiles = intEnv("REACH_TILES", cfg.ReachTiles)
	cfg.AttackDamage = intEnv("ATTACK_DAMAGE", cfg.AttackDamage)
	return cfg
}

func mapParamsFromEnv() mapgen.Parameters {
	p := mapgen.DefaultParameters()
	p.Seed = uint64(intEnv("WORLD_SEED", 4))
	p.Width = intEnv("WORLD_WIDTH", 100)
	p.Height = intEnv("WORLD_HEIGHT", 100)
	p.WaterThreshold = floatEnv("WORLD_WATER_THRESHOLD", 0.1)
	p.BeachRadius = intEnv("WORLD_BEACH_RADIUS", p.BeachRadius)
	if densities := densitiesEnv("WORLD_DENSITIES"); densities != nil {
		p.Densities = densities
	}
	return p
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// densitiesEnv parses "tree=0.007,rock=0.002". Order is kept; malformed
// pairs and unknown kinds are skipped.
func densitiesEnv(key string) []mapgen.Density {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	out := []mapgen.Density{}
	for _, pair := range strings.Split(raw, ",") {
		kv := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(kv) != 2 {
			continue
		}
		kind, ok := world.ParseObjectKind(strings.TrimSpace(kv[0]))
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil || f < 0 || f > 1 {
			continue
		}
		out = append(out, mapgen.Density{Kind: kind, Fraction: f})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
