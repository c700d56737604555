package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bitbucket.org/optimizer/backend/core/experiment"
	"bitbucket.org/optimizer/backend/core/knapsack"
	"bitbucket.org/optimizer/backend/core/logger"
	"bitbucket.org/optimizer/backend/core/metrics"
	"bitbucket.org/optimizer/backend/core/server"
	"bitbucket.org/optimizer/backend/core/storage/results"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	c, err := parseConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	log := logger.New(os.Stderr, c.logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, c, log, os.Stdout); err != nil {
		log.Error("experiment failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, c *config, log *slog.Logger, out io.Writer) error {
	problems, err := loadProblems(c)
	if err != nil {
		return err
	}

	opts := []func(*experiment.Runner){experiment.WithLogger(log)}

	if c.table != "" {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(c.region),
		})
		if err != nil {
			return err
		}
		opts = append(opts, experiment.WithStorage(results.New(sess, results.WithTable(c.table))))
	}

	if c.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, experiment.WithMetrics(metrics.New(reg)))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: c.metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server stopped", "error", err)
			}
		}()
		defer srv.Close()
		log.Info("serving metrics", "addr", c.metricsAddr)
	}

	r, err := experiment.New(c.experiment, opts...)
	if err != nil {
		return err
	}
	summaries, err := r.Run(ctx, problems)
	if err != nil {
		return err
	}

	for _, s := range summaries {
		fmt.Fprintf(out, "Dataset: %s Optimum: %g Mean: %g Best: %g Worst: %g\n",
			s.Dataset, s.Optimum, s.Mean, s.Best, s.Worst)
	}

	return nil
}

func loadProblems(c *config) ([]experiment.Problem, error) {
	switch {
	case c.file != "":
		k, err := knapsack.LoadFile(c.file, c.optimum)
		if err != nil {
			return nil, err
		}
		return []experiment.Problem{k}, nil
	case c.url != "":
		k, err := knapsack.Fetch(server.New(), c.url, c.optimum)
		if err != nil {
			return nil, err
		}
		return []experiment.Problem{k}, nil
	}

	ks, err := knapsack.Datasets()
	if err != nil {
		return nil, err
	}
	problems := make([]experiment.Problem, len(ks))
	for i, k := range ks {
		problems[i] = k
	}

	return problems, nil
}
