package main

import (
	"context"
	"fmt"
	"time"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/workerpool"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Regenerate stored recommendations for one user or all users",
	RunE:  runRecommend,
}

var (
	recommendUserID  string
	recommendAll     bool
	recommendBatch   int
	recommendWorkers int
	recommendRPS     int
)

func init() {
	recommendCmd.Flags().StringVar(&recommendUserID, "user", "", "User ID to regenerate")
	recommendCmd.Flags().BoolVar(&recommendAll, "all", false, "Regenerate every user")
	recommendCmd.Flags().IntVar(&recommendBatch, "batch", 100, "Users fetched per page with --all")
	recommendCmd.Flags().IntVar(&recommendWorkers, "workers", 4, "Concurrent regenerations with --all")
	recommendCmd.Flags().IntVar(&recommendRPS, "rps", 0, "Maximum regenerations started per second (0 = unlimited)")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if (recommendUserID == "") == !recommendAll {
		return fmt.Errorf("provide exactly one of --user or --all")
	}

	if recommendBatch <= 0 {
		return fmt.Errorf("--batch must be positive")
	}

	var single uuid.UUID
	if recommendUserID != "" {
		id, err := uuid.Parse(recommendUserID)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
		single = id
	}

	c, err := openContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	uc := c.Usecases.Recommendation

	if single != uuid.Nil {
		items, err := uc.GenerateRecommendations(ctx, single)
		if err != nil {
			return fmt.Errorf("generate recommendations: %w", err)
		}
		return writeJSON(out, dto.NewEnhancedRecommendationResponses(items))
	}

	start := time.Now()
	pool := workerpool.New(recommendWorkers, recommendBatch, recommendRPS)
	results := pool.Run(ctx)

	listErr := make(chan error, 1)
	go func() {
		defer pool.Close()
		for offset := 0; ; offset += recommendBatch {
			ids, err := c.Repos.Users.ListUserIDs(ctx, recommendBatch, offset)
			if err != nil {
				listErr <- fmt.Errorf("list users: %w", err)
				return
			}
			for _, id := range ids {
				job := workerpool.Job{Key: id.String(), Run: func(ctx context.Context) error {
					_, err := uc.GenerateRecommendations(ctx, id)
					return err
				}}
				if err := pool.Submit(ctx, job); err != nil {
					listErr <- err
					return
				}
			}
			if len(ids) < recommendBatch {
				listErr <- nil
				return
			}
		}
	}()

	total, failed := 0, 0
	for r := range results {
		total++
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "user_id=%s status=error err=%v\n", r.Key, r.Err)
			continue
		}
		fmt.Fprintf(out, "user_id=%s status=ok duration=%s\n", r.Key, r.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(out, "users=%d failed=%d duration=%s\n", total, failed, time.Since(start).Round(time.Millisecond))
	return <-listErr
}
