package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mentora/internal/llm"
	"mentora/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		events, err := d.store.EventRepo().RecentLLMRequests(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <seq>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sequence %q: %w", args[0], err)
		}

		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		events, err := d.store.EventRepo().RecentLLMRequests(cmd.Context(), store.QueryOpts{
			After:  seq - 1,
			Before: seq + 1,
			Limit:  1,
		})
		if err != nil {
			return fmt.Errorf("query event: %w", err)
		}
		if len(events) == 0 {
			return fmt.Errorf("event %d not found", seq)
		}
		e := events[0]

		sep := strings.Repeat("─", 60)

		fmt.Printf("Seq:       %d\n", e.Sequence)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REQUEST")
		fmt.Println(sep)
		if e.RequestBody != "" {
			fmt.Println(e.RequestBody)
		} else {
			fmt.Println("(not captured)")
		}

		fmt.Println(sep)
		fmt.Println("RESPONSE")
		fmt.Println(sep)
		if e.ResponseBody != "" {
			fmt.Println(e.ResponseBody)
		} else {
			fmt.Println("(not captured)")
		}

		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		usage, err := d.store.EventRepo().Usage(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(usage) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Model")
		fmt.Println(strings.Repeat("─", 86))
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s  %10s\n",
			"Model", "Calls", "Input", "Output", "Total", "Est. Cost")
		fmt.Println(strings.Repeat("─", 86))

		var totalCalls, totalIn, totalOut int
		var totalCost float64
		costKnown := true
		for _, u := range usage {
			total := u.InputTokens + u.OutputTokens
			cost := "?"
			if c := llm.LookupCost(u.Model); c != nil {
				usd := c.Cost(u.InputTokens, u.OutputTokens)
				cost = fmt.Sprintf("$%.4f", usd)
				totalCost += usd
			} else {
				costKnown = false
			}
			fmt.Printf("%-32s  %6d  %10d  %10d  %10d  %10s\n",
				u.Model, u.Requests, u.InputTokens, u.OutputTokens, total, cost)
			totalCalls += u.Requests
			totalIn += u.InputTokens
			totalOut += u.OutputTokens
		}

		fmt.Println(strings.Repeat("─", 86))
		totalCostStr := fmt.Sprintf("$%.4f", totalCost)
		if !costKnown {
			totalCostStr = ">" + totalCostStr
		}
		fmt.Printf("%-32s  %6d  %10d  %10d  %10d  %10s\n",
			"TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut, totalCostStr)
		return nil
	},
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured provider with a small test request",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		provider, err := llm.NewProvider(cmd.Context(), d.cfg.LLM, d.store.EventRepo(), d.logger)
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		fmt.Printf("Probing %s...\n", provider.ModelID())
		resp, err := provider.Generate(llm.WithPurpose(ctx, "check"), llm.Request{
			Prompt:    "Reply with the single word: ok",
			MaxTokens: 8,
		})
		if err != nil {
			return fmt.Errorf("probe request: %w", err)
		}

		fmt.Printf("OK. Model %s answered with %d input / %d output tokens.\n",
			resp.Model, resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum number of events to list")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose (roadmap, course-preview, course-full, deck-gen)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
	llmCmd.AddCommand(llmCheckCmd)
}
