package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mentora/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review and generation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		events := d.store.EventRepo()
		cards := d.store.CardRepo()

		var (
			review store.ReviewStats
			usage  []store.LLMUsage
			flows  []store.FlowEvent
			decks  []string
		)

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			var err error
			review, err = events.DeckStats(ctx, "")
			return err
		})
		g.Go(func() error {
			var err error
			usage, err = events.Usage(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			flows, err = events.RecentFlowEvents(ctx, store.QueryOpts{Limit: 200})
			return err
		})
		g.Go(func() error {
			var err error
			decks, err = cards.Decks(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return fmt.Errorf("collect stats: %w", err)
		}

		printReviewStats(review, len(decks))
		printFlowStats(flows)
		printUsageStats(usage)
		return nil
	},
}

func printReviewStats(s store.ReviewStats, decks int) {
	fmt.Println("Reviews")
	fmt.Println(strings.Repeat("─", 48))
	accuracy := 0
	if s.Reviewed > 0 {
		accuracy = int(float64(s.Correct)/float64(s.Reviewed)*100 + 0.5)
	}
	fmt.Printf("  Decks: %d   Cards reviewed: %d   Accuracy: %d%%   Avg time: %.1fs\n",
		decks, s.Reviewed, accuracy, s.AvgTimeSecs)
	fmt.Println()
}

func printFlowStats(flows []store.FlowEvent) {
	succeeded := make(map[string]int)
	failed := make(map[string]int)
	var last time.Time
	for _, e := range flows {
		switch e.Action {
		case "succeed":
			succeeded[e.Flow]++
		case "fail":
			failed[e.Flow]++
		}
		if e.Timestamp.After(last) {
			last = e.Timestamp
		}
	}

	fmt.Println("Wizards")
	fmt.Println(strings.Repeat("─", 48))
	for _, flow := range []string{"roadmap", "course"} {
		fmt.Printf("  %-8s  completed: %d   failed: %d\n", flow, succeeded[flow], failed[flow])
	}
	if !last.IsZero() {
		fmt.Printf("  last activity: %s\n", last.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println()
}

func printUsageStats(usage []store.LLMUsage) {
	fmt.Println("AI Usage")
	fmt.Println(strings.Repeat("─", 48))
	if len(usage) == 0 {
		fmt.Println("  No AI usage recorded yet.")
		return
	}
	fmt.Printf("  %-32s  %6s  %10s  %10s\n", "Model", "Calls", "Input", "Output")
	for _, u := range usage {
		fmt.Printf("  %-32s  %6d  %10d  %10d\n", u.Model, u.Requests, u.InputTokens, u.OutputTokens)
	}
}
