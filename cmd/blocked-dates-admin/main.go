// File: cmd/blocked-dates-admin/main.go
//
// Operational companion to the API server: inspect and repair the
// blocked-date registry directly against the database.
//
//	blocked-dates-admin summary
//	blocked-dates-admin validate
//	blocked-dates-admin force-sync
//	blocked-dates-admin -yes clear-all
//	blocked-dates-admin block-multiple 2026-01-01,2026-01-02 [reason]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"appointly/config"
	"appointly/database"
	blockeddateRepoPkg "appointly/database/repository/blockeddate"
	"appointly/services/blockeddates"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: blocked-dates-admin <summary|validate|force-sync|clear-all|block-multiple> [args]")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	yes := flag.Bool("yes", false, "confirm destructive commands")
	timeout := flag.Duration("timeout", 30*time.Second, "overall command timeout")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	config.LoadConfig()
	database.InitDB()
	defer database.CloseDB()

	svc := &blockeddates.DefaultBlockedDateService{
		Repo: blockeddateRepoPkg.NewMongoBlockedDateRepo(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var (
		out any
		err error
	)

	switch cmd := flag.Arg(0); cmd {
	case "summary":
		out, err = svc.Summary(ctx)

	case "validate":
		out, err = svc.ValidateConsistency(ctx)

	case "force-sync":
		out, err = svc.ForceSync(ctx)

	case "clear-all":
		if !*yes {
			fmt.Fprintln(os.Stderr, "clear-all removes every blocked date; re-run as '-yes clear-all' to confirm")
			os.Exit(2)
		}
		var removed int64
		removed, err = svc.ClearAll(ctx)
		out = map[string]int64{"removed": removed}

	case "block-multiple":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "block-multiple needs a comma-separated date list")
			os.Exit(2)
		}
		dates := strings.Split(flag.Arg(1), ",")
		for i := range dates {
			dates[i] = strings.TrimSpace(dates[i])
		}
		reason := ""
		if flag.NArg() > 2 {
			reason = flag.Arg(2)
		}
		out, err = svc.BlockMany(ctx, dates, reason, "")

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "blocked-dates-admin: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "blocked-dates-admin: encode output: %v\n", err)
		os.Exit(1)
	}
}
