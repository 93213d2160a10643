package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/graphmason/communities/pkg/graph"
	"github.com/graphmason/communities/pkg/logging"
	"github.com/graphmason/communities/pkg/louvain"
	"github.com/graphmason/communities/pkg/validation"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	input := flag.String("input", "", "Path to edge-list file (.sz/.snappy decompressed on the fly)")
	binary := flag.Bool("binary", false, "Input is in the fixed-record binary format")
	output := flag.String("output", "", "Path to write 'vertex community' lines (default stdout)")
	strategy := flag.String("strategy", "", "Sync strategy: fullSync, earlyTerminate, fullSyncEarlyTerminate")
	epsilon := flag.Float64("epsilon", 0, "Minimum modularity gain per pass to continue")
	minMoved := flag.Float64("min-moved", -1, "Early-terminate moved-vertex fraction threshold")
	maxPasses := flag.Int("max-passes", 0, "Per-phase inner-loop pass cap")
	maxPhases := flag.Int("max-phases", 0, "Coarsening phase cap")
	threads := flag.Int("threads", 0, "Worker pool size (default NumCPU)")
	noColoring := flag.Bool("no-coloring", false, "Disable color-based batch scheduling")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	req := &validation.RunRequest{Input: *input}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}
		if err := yaml.Unmarshal(data, req); err != nil {
			log.Fatalf("Failed to parse config: %v", err)
		}
		if *input != "" {
			req.Input = *input
		}
	}
	applyFlagOverrides(req, output, strategy, epsilon, minMoved, maxPasses, maxPhases, threads, noColoring, logLevel)

	if err := validation.ValidateRunRequest(req); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	opts, err := buildOptions(req)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	load := logging.StartTimer(opts.Logger, "graph loaded", logging.String("input", req.Input))
	g, err := loadGraph(req.Input, *binary)
	if err != nil {
		load.EndError(err)
		log.Fatalf("Failed to load graph: %v", err)
	}
	load.End()
	fmt.Printf("Loaded graph: %d vertices, %d edges\n", g.NumVertices(), g.NumEdges())

	result, err := louvain.Detect(context.Background(), g, opts)
	if err != nil {
		log.Fatalf("Detection failed: %v", err)
	}

	if err := writeCommunities(req.Output, result.Communities); err != nil {
		log.Fatalf("Failed to write communities: %v", err)
	}

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Communities: %d\n", result.NumCommunities)
	fmt.Printf("  Modularity:  %.6f\n", result.Modularity)
	fmt.Printf("  Phases:      %d\n", result.Phases)
	fmt.Printf("  Passes:      %d\n", result.Passes)
	fmt.Printf("  Runtime:     %v\n", result.Runtime)
	if !result.Converged {
		fmt.Printf("  Note: budgets expired before full convergence; assignment is best found\n")
	}
}

// applyFlagOverrides lets explicitly passed flags win over config file values.
func applyFlagOverrides(req *validation.RunRequest, output, strategy *string, epsilon, minMoved *float64,
	maxPasses, maxPhases, threads *int, noColoring *bool, logLevel *string) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["output"] {
		req.Output = *output
	}
	if set["strategy"] {
		req.SyncStrategy = *strategy
	}
	if set["epsilon"] {
		req.Epsilon = *epsilon
	}
	if set["min-moved"] {
		req.MinMoved = *minMoved
	}
	if set["max-passes"] {
		req.MaxPasses = *maxPasses
	}
	if set["max-phases"] {
		req.MaxPhases = *maxPhases
	}
	if set["threads"] {
		req.NumThreads = *threads
	}
	if set["no-coloring"] {
		useColoring := !*noColoring
		req.UseColoring = &useColoring
	}
	if set["log-level"] {
		req.LogLevel = *logLevel
	}
}

// buildOptions fills engine options from the validated request.
func buildOptions(req *validation.RunRequest) (louvain.Options, error) {
	opts := louvain.DefaultOptions()
	if req.SyncStrategy != "" {
		s, err := louvain.ParseStrategy(req.SyncStrategy)
		if err != nil {
			return opts, err
		}
		opts.SyncStrategy = s
	}
	if req.Epsilon > 0 {
		opts.ConvergenceEpsilon = req.Epsilon
	}
	if req.MinMoved >= 0 {
		opts.MinMovedFraction = req.MinMoved
	}
	if req.MaxPasses > 0 {
		opts.MaxPasses = req.MaxPasses
	}
	if req.MaxPhases > 0 {
		opts.MaxPhases = req.MaxPhases
	}
	if req.NumThreads > 0 {
		opts.NumThreads = req.NumThreads
	}
	if req.UseColoring != nil {
		opts.UseColoring = *req.UseColoring
	}

	level := logging.InfoLevel
	if req.LogLevel != "" {
		level = logging.ParseLevel(req.LogLevel)
	}
	opts.Logger = logging.NewJSONLogger(os.Stderr, level)

	return opts, nil
}

func loadGraph(path string, binary bool) (*graph.Graph, error) {
	if binary {
		return graph.LoadBinaryEdgeList(path)
	}
	return graph.LoadEdgeList(path)
}

func writeCommunities(path string, communities []int) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	for v, c := range communities {
		if _, err := fmt.Fprintf(out, "%d %d\n", v, c); err != nil {
			return err
		}
	}
	return nil
}
