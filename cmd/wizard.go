package cmd

import (
	"github.com/spf13/cobra"

	"mentora/internal/flow"
	"mentora/internal/screen"
	"mentora/internal/screens/course"
	"mentora/internal/screens/reviewscreen"
	"mentora/internal/screens/roadmap"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Open the roadmap wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAppAt(cmd, func(d *deps) screen.Screen {
			return roadmap.New(d.backend, d.store.EventRepo(), flow.SystemClock(), d.logger)
		})
	},
}

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Open the course wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAppAt(cmd, func(d *deps) screen.Screen {
			return course.New(d.backend, d.store.EventRepo(), flow.SystemClock(), d.logger)
		})
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review [deck]",
	Short: "Start a flashcard review session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck := ""
		if len(args) == 1 {
			deck = args[0]
		}
		return runAppAt(cmd, func(d *deps) screen.Screen {
			return reviewscreen.New(d.backend, d.store.EventRepo(), flow.SystemClock(), d.logger, deck)
		})
	},
}

func init() {
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(reviewCmd)
}
