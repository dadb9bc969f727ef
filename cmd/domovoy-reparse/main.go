package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"domovoy/internal/modkit"
	"domovoy/internal/modkit/module"
	"domovoy/internal/platform/config"
	"domovoy/internal/platform/logger"
	"domovoy/internal/platform/store"

	commandsmod "domovoy/internal/services/commands/module"
	reparsedom "domovoy/internal/services/reparse/domain"
	reparsemod "domovoy/internal/services/reparse/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		startStr    = flag.String("start", "", "inclusive day, e.g. 2026-08-01")
		endStr      = flag.String("end", "", "exclusive day, e.g. 2026-08-02")
		annotateURL = flag.String("annotate-url", "", "annotation sidecar base url")
		workers     = flag.Int("workers", 2, "concurrency (>=1)")
		page        = flag.Int("page", 500, "page size (rows)")
		dryRun      = flag.Bool("dry-run", false, "extract but do not write slots")
	)
	flag.Parse()

	if *startStr == "" || *endStr == "" {
		log.Fatal("start/end are required (day resolution)")
	}
	start, err := time.Parse("2006-01-02", *startStr)
	if err != nil {
		log.Fatalf("bad -start: %v", err)
	}
	end, err := time.Parse("2006-01-02", *endStr)
	if err != nil {
		log.Fatalf("bad -end: %v", err)
	}
	if !start.Before(end) {
		log.Fatal("start must be < end")
	}

	// Pass CLI flags into CORE_REPARSE_* so the module can read its own config
	mustSetEnv("CORE_REPARSE_ANNOTATE_URL", *annotateURL)
	mustSetEnv("CORE_REPARSE_WORKERS", strconv.Itoa(*workers))
	mustSetEnv("CORE_REPARSE_PAGE_SIZE", strconv.Itoa(*page))
	mustSetEnv("CORE_REPARSE_DRY_RUN", map[bool]string{true: "1", false: "0"}[*dryRun])

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	// Build the commands module first, the runner borrows its ports
	cm := commandsmod.New(deps)
	cports := module.MustPortsOf[commandsmod.Ports](cm)

	rm := reparsemod.New(
		deps,
		reparsemod.Options{
			Workers:  *workers,
			PageSize: *page,
			DryRun:   *dryRun,
		},
		modkit.WithPorts(reparsedom.Ports{
			Reader: cports.Reader,
			Slots:  cports.Slots,
		}),
	)

	// Register ports
	module.Register(cm.Name(), cm.Ports())
	module.Register(rm.Name(), rm.Ports())

	// Kick the runner
	ports := rm.Ports().(reparsemod.Ports)
	if err := ports.Runner.RunRange(context.Background(), start.UTC(), end.UTC()); err != nil {
		l.Fatal().Err(err).Msg("reparse failed")
	}
}
