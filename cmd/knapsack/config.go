package main

import (
	"flag"
	"os"
	"runtime"
	"strconv"

	"bitbucket.org/optimizer/backend/core/experiment"
	"bitbucket.org/optimizer/backend/core/genetic"
)

type config struct {
	experiment experiment.Config

	file    string
	url     string
	optimum float64

	table       string
	region      string
	metricsAddr string
	logLevel    string
}

// getEnv returns the env var value or a fallback
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

// parseConfig reads flags from args. Every flag defaults to its KNAPSACK_*
// environment variable, then to the built-in default.
func parseConfig(args []string) (*config, error) {
	var (
		c  = &config{}
		ga = genetic.DefaultConfig()
		fs = flag.NewFlagSet("knapsack", flag.ContinueOnError)
	)

	fs.IntVar(&c.experiment.GA.Individuals, "individuals", getEnvInt("KNAPSACK_INDIVIDUALS", ga.Individuals), "population size")
	fs.IntVar(&c.experiment.GA.Generations, "generations", getEnvInt("KNAPSACK_GENERATIONS", ga.Generations), "generations per run")
	fs.Float64Var(&c.experiment.GA.CrossoverRate, "crossover", getEnvFloat("KNAPSACK_CROSSOVER_RATE", ga.CrossoverRate), "crossover probability per pair")
	fs.Float64Var(&c.experiment.GA.MutationRate, "mutation", getEnvFloat("KNAPSACK_MUTATION_RATE", ga.MutationRate), "mutation probability per gene")
	fs.Float64Var(&c.experiment.GA.ElitismRate, "elitism", getEnvFloat("KNAPSACK_ELITISM_RATE", ga.ElitismRate), "share of the population kept as elites")
	fs.IntVar(&c.experiment.Runs, "runs", getEnvInt("KNAPSACK_RUNS", 30), "independent runs per dataset")
	fs.IntVar(&c.experiment.Parallelism, "parallel", getEnvInt("KNAPSACK_PARALLELISM", runtime.NumCPU()), "concurrent runs")
	fs.Int64Var(&c.experiment.Seed, "seed", getEnvInt64("KNAPSACK_SEED", 0), "seed of the first run, 0 for a random one")

	fs.StringVar(&c.file, "file", getEnv("KNAPSACK_FILE", ""), "dataset file to solve instead of the built-in datasets")
	fs.StringVar(&c.url, "url", getEnv("KNAPSACK_URL", ""), "dataset url to solve instead of the built-in datasets")
	fs.Float64Var(&c.optimum, "optimum", getEnvFloat("KNAPSACK_OPTIMUM", 0), "known optimum of the -file or -url dataset")

	fs.StringVar(&c.table, "table", getEnv("KNAPSACK_TABLE", ""), "DynamoDB table storing results, empty disables storage")
	fs.StringVar(&c.region, "region", getEnv("AWS_REGION", "us-west-2"), "AWS region")
	fs.StringVar(&c.metricsAddr, "metrics-addr", getEnv("KNAPSACK_METRICS_ADDR", ""), "address serving /metrics, empty disables it")
	fs.StringVar(&c.logLevel, "log-level", getEnv("KNAPSACK_LOG_LEVEL", "info"), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return c, nil
}
