// Command distnose inspects how a test suite splits across worker nodes.
//
// Configuration is read from DISTNOSE_* environment variables and can be
// overridden with flags. Item keys passed as arguments are resolved to their
// owning node; with -summary the LPT assignment table is printed as well.
//
// Usage:
//
//	DISTNOSE_NODES=4 DISTNOSE_NODE_NUMBER=2 distnose pkg/app.TestLogin pkg/app.LoginSuite.TestOK
//	distnose -nodes 2 -algorithm least-processing-time -lpt-data durations.json -summary
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	distnose "github.com/kchuriumova/distributed-nose"
	"github.com/kchuriumova/distributed-nose/internal/logging"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "distnose:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := distnose.ConfigFromEnv(ctx)
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.Nodes, "nodes", cfg.Nodes, "across how many nodes are tests being distributed")
	flag.StringVar(&cfg.NodeNumber, "node-number", cfg.NodeNumber, "which 1-indexed node is this")
	flag.BoolVar(&cfg.Disabled, "distributed-disabled", cfg.Disabled, "disable distribution despite the node count")
	flag.BoolVar(&cfg.HashByClass, "hash-by-class", cfg.HashByClass, "keep tests of the same class on the same node")
	flag.StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm, "partitioning algorithm: consistent-hash or least-processing-time")
	flag.StringVar(&cfg.LPTDataPath, "lpt-data", cfg.LPTDataPath, "duration-data file for least-processing-time")
	summary := flag.Bool("summary", false, "print the least-processing-time bucket summary")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	engine, err := distnose.NewEngine(ctx, cfg, distnose.WithLogger(logger))
	if err != nil {
		return err
	}

	if *summary {
		buckets := engine.Buckets()
		if buckets == nil {
			return fmt.Errorf("-summary requires -algorithm least-processing-time")
		}
		for _, bucket := range buckets {
			marker := " "
			if bucket.Node == engine.NodeID() {
				marker = "*"
			}
			fmt.Printf("%s node %d: %9.1fs %5d items\n", marker, bucket.Node, bucket.Total, len(bucket.Items))
		}
	}

	for _, key := range flag.Args() {
		node, ok := engine.ResolveKey(key)
		if !ok {
			fmt.Printf("  %-50s distribution disabled\n", key)
			continue
		}

		marker := " "
		if node == engine.NodeID() {
			marker = "*"
		}
		fmt.Printf("%s %-50s node %d\n", marker, key, node)
	}

	return nil
}
