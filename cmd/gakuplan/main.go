package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gakuplan/internal/bootstrap"
	profiledto "gakuplan/internal/modules/profile/dto"
	strategydto "gakuplan/internal/modules/strategy/dto"
	weeklydto "gakuplan/internal/modules/weekly/dto"
	"gakuplan/internal/platform/config"
	"gakuplan/internal/platform/isodate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "gakuplan",
		Short:         "Exam study planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", ".", "planner data directory")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newStatusCmd(&dataPath))
	root.AddCommand(newSetCmd(&dataPath))
	root.AddCommand(newCauseCmd(&dataPath))
	root.AddCommand(newMemoCmd(&dataPath))
	root.AddCommand(newPurposeCmd(&dataPath))
	root.AddCommand(newGoalCmd(&dataPath))
	root.AddCommand(newAdviseCmd(&dataPath))
	root.AddCommand(newStrategyCmd(&dataPath))
	root.AddCommand(newWeekCmd(&dataPath))
	root.AddCommand(newResetCmd(&dataPath))
	root.AddCommand(newHistoryCmd(&dataPath))
	root.AddCommand(newReindexCmd(&dataPath))
	root.AddCommand(newCatalogCmd(&dataPath))
	return root
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the planner terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(*dataPath, app)
		},
	}
}

func newStatusCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.Show(context.Background())
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
}

func printSession(cmd *cobra.Command, s profiledto.SessionOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "subject:      %s\n", s.Subject)
	_, _ = fmt.Fprintf(w, "score/target: %d / %d\n", s.Score, s.Target)
	_, _ = fmt.Fprintf(w, "exam:         %s\n", s.ExamLabel)
	_, _ = fmt.Fprintf(w, "study start:  %s\n", s.StudyStart)
	_, _ = fmt.Fprintf(w, "weekly start: %s\n", s.WeeklyStart)
	if s.PurposeNote != "" {
		_, _ = fmt.Fprintf(w, "purpose:      %s\n", s.PurposeNote)
	}
	if s.Memo != "" {
		_, _ = fmt.Fprintf(w, "memo:         %s\n", s.Memo)
	}
	if len(s.Causes) > 0 {
		keys := make([]string, 0, len(s.Causes))
		for key, on := range s.Causes {
			if on {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		_, _ = fmt.Fprintf(w, "causes:       %s\n", strings.Join(keys, ", "))
	}
	for _, goal := range s.Goals {
		_, _ = fmt.Fprintf(w, "goal %s  %3d%%  %s\n", goal.ID, goal.Progress, goal.Title)
	}
	_, _ = fmt.Fprintf(w, "strategy: %d items, snapshots: %d, history: %d\n",
		len(s.Strategy), len(s.WeekSnapshots), len(s.History))
}

func newSetCmd(dataPath *string) *cobra.Command {
	set := &cobra.Command{Use: "set", Short: "Update session fields"}

	type fieldCmd struct {
		use, short string
		run        func(app *bootstrap.App, value string) (profiledto.SessionOutput, error)
	}
	fields := []fieldCmd{
		{"subject <name>", "Set the subject under study", func(app *bootstrap.App, v string) (profiledto.SessionOutput, error) {
			return app.ProfileCLI.SetSubject(context.Background(), v)
		}},
		{"exam-type <name>", "Set the exam type (recomposes the label)", func(app *bootstrap.App, v string) (profiledto.SessionOutput, error) {
			return app.ProfileCLI.SetExamType(context.Background(), v)
		}},
		{"exam-label <label>", "Set the exam label directly", func(app *bootstrap.App, v string) (profiledto.SessionOutput, error) {
			return app.ProfileCLI.SetExamLabel(context.Background(), v)
		}},
		{"study-start <date>", "Set the study start date (YYYY-MM-DD)", func(app *bootstrap.App, v string) (profiledto.SessionOutput, error) {
			return app.ProfileCLI.SetStudyStart(context.Background(), v)
		}},
		{"weekly-start <date>", "Set the weekly grid start date (YYYY-MM-DD)", func(app *bootstrap.App, v string) (profiledto.SessionOutput, error) {
			return app.ProfileCLI.SetWeeklyStart(context.Background(), v)
		}},
	}
	for _, field := range fields {
		run := field.run
		set.AddCommand(&cobra.Command{
			Use:   field.use,
			Short: field.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := loadApp(*dataPath)
				if err != nil {
					return err
				}
				out, err := run(app, args[0])
				if err != nil {
					return err
				}
				printSession(cmd, out)
				return nil
			},
		})
	}

	type intCmd struct {
		use, short string
		run        func(app *bootstrap.App, value int) (profiledto.SessionOutput, error)
	}
	intFields := []intCmd{
		{"target <points>", "Set the target score (0-100)", func(app *bootstrap.App, v int) (profiledto.SessionOutput, error) {
			return app.ProfileCLI.SetTarget(context.Background(), v)
		}},
		{"score <points>", "Set the latest score (0-100)", func(app *bootstrap.App, v int) (profiledto.SessionOutput, error) {
			return app.ProfileCLI.SetScore(context.Background(), v)
		}},
		{"exam-year <year>", "Set the exam year (recomposes the label)", func(app *bootstrap.App, v int) (profiledto.SessionOutput, error) {
			return app.ProfileCLI.SetExamYear(context.Background(), v)
		}},
	}
	for _, field := range intFields {
		run := field.run
		set.AddCommand(&cobra.Command{
			Use:   field.use,
			Short: field.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parse %q: %w", args[0], err)
				}
				app, err := loadApp(*dataPath)
				if err != nil {
					return err
				}
				out, err := run(app, value)
				if err != nil {
					return err
				}
				printSession(cmd, out)
				return nil
			},
		})
	}
	return set
}

func newCauseCmd(dataPath *string) *cobra.Command {
	cause := &cobra.Command{Use: "cause", Short: "Manage weakness causes"}

	cause.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the causes available for the current subject",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			session, err := app.ProfileCLI.Show(ctx)
			if err != nil {
				return err
			}
			causes, err := app.CatalogCLI.ListCauses(ctx, session.Subject)
			if err != nil {
				return err
			}
			for _, c := range causes {
				mark := " "
				if session.Causes[c.Key] {
					mark = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-12s %s（%s）\n", mark, c.Key, c.Label, c.Hint)
			}
			return nil
		},
	})

	var off bool
	toggle := &cobra.Command{
		Use:   "toggle <key>",
		Short: "Select or clear one cause",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.ToggleCause(context.Background(), args[0], !off)
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
	toggle.Flags().BoolVar(&off, "off", false, "clear the cause instead of selecting it")
	cause.AddCommand(toggle)
	return cause
}

func newMemoCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "memo <text>",
		Short: "Set the free-form memo for this cycle",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.SetMemo(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
}

func newPurposeCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "purpose <text>",
		Short: "Set the long-term purpose note",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.SetPurpose(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
}

func newGoalCmd(dataPath *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage named goals"}

	goal.AddCommand(&cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.AddGoal(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added goal %s: %s\n", out.ID, out.Title)
			return nil
		},
	})

	goal.AddCommand(&cobra.Command{
		Use:   "progress <id> <percent>",
		Short: "Set a goal's progress (0-100)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			percent, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.SetGoalProgress(context.Background(), args[0], percent)
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	})

	goal.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.RemoveGoal(context.Background(), args[0])
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	})
	return goal
}

func newAdviseCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "advise",
		Short: "Show the recommended next actions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.AdviceCLI.Advise(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s  %d/%d点  %s（%s）\n", out.Subject, out.Score, out.Target, out.ExamLabel, out.Tier)
			for idx, sol := range out.Solutions {
				_, _ = fmt.Fprintf(w, "%d. %s\n   %s\n", idx, sol.Title, sol.Reason)
				if sol.URL != "" {
					_, _ = fmt.Fprintf(w, "   %s\n", sol.URL)
				}
			}
			return nil
		},
	}
}

func printPlan(cmd *cobra.Command, plan strategydto.PlanOutput) {
	w := cmd.OutOrStdout()
	if len(plan.Items) == 0 {
		_, _ = fmt.Fprintln(w, "no strategy items")
		return
	}
	for _, item := range plan.Items {
		months := "-"
		if item.HasMonths {
			months = fmt.Sprintf("%d月〜%d月", item.MonthsStart, item.MonthsEnd)
		}
		weekly := ""
		if item.Weekly {
			weekly = " [週間]"
		}
		_, _ = fmt.Fprintf(w, "%d. %s / %s  %s%s\n   %s\n", item.Index, item.Subject, item.Title, months, weekly, item.Reason)
	}
}

func newStrategyCmd(dataPath *string) *cobra.Command {
	strategy := &cobra.Command{Use: "strategy", Short: "Manage the long-term plan"}

	strategy.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plan items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			plan, err := app.StrategyCLI.List(context.Background())
			if err != nil {
				return err
			}
			printPlan(cmd, plan)
			return nil
		},
	})

	strategy.AddCommand(&cobra.Command{
		Use:   "promote <solution>",
		Short: "Promote a current recommendation into the plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			plan, err := app.StrategyCLI.Promote(context.Background(), index)
			if err != nil {
				return err
			}
			printPlan(cmd, plan)
			return nil
		},
	})

	strategy.AddCommand(&cobra.Command{
		Use:   "month <item> <month>",
		Short: "Click one month on a plan item's schedule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			plan, err := app.StrategyCLI.ToggleMonth(context.Background(), item, month)
			if err != nil {
				return err
			}
			printPlan(cmd, plan)
			return nil
		},
	})

	var off bool
	weeklyCmd := &cobra.Command{
		Use:   "weekly <item>",
		Short: "Enroll a plan item in the weekly grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			plan, err := app.StrategyCLI.SetWeekly(context.Background(), item, !off)
			if err != nil {
				return err
			}
			printPlan(cmd, plan)
			return nil
		},
	}
	weeklyCmd.Flags().BoolVar(&off, "off", false, "remove the item from the weekly grid")
	strategy.AddCommand(weeklyCmd)

	strategy.AddCommand(&cobra.Command{
		Use:   "remove <item>",
		Short: "Remove one plan item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			plan, err := app.StrategyCLI.Remove(context.Background(), item)
			if err != nil {
				return err
			}
			printPlan(cmd, plan)
			return nil
		},
	})

	strategy.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every plan item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			plan, err := app.StrategyCLI.Clear(context.Background())
			if err != nil {
				return err
			}
			printPlan(cmd, plan)
			return nil
		},
	})
	return strategy
}

func printGrid(cmd *cobra.Command, grid weeklydto.GridOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "week of %s\n", grid.WeekStart)
	header := make([]string, len(grid.Dates))
	for i, date := range grid.Dates {
		label := date
		if len(date) == len(isodate.Layout) {
			label = date[5:] // drop the year for the header
		}
		header[i] = fmt.Sprintf("%s %s", grid.Labels[i], label)
	}
	_, _ = fmt.Fprintln(w, "     "+strings.Join(header, " | "))
	if len(grid.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "no weekly items")
		return
	}
	for _, row := range grid.Rows {
		cells := make([]string, len(grid.Dates))
		for day := range cells {
			cells[day] = row.Cells[day]
		}
		_, _ = fmt.Fprintf(w, "%d. %s / %s: %s\n", row.Index, row.Subject, row.Title, strings.Join(cells, " | "))
	}
}

func newWeekCmd(dataPath *string) *cobra.Command {
	week := &cobra.Command{Use: "week", Short: "Manage the weekly grid"}

	week.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current week grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			grid, err := app.WeeklyCLI.Grid(context.Background())
			if err != nil {
				return err
			}
			printGrid(cmd, grid)
			return nil
		},
	})

	week.AddCommand(&cobra.Command{
		Use:   "cell <item> <day> [text]",
		Short: "Write one grid cell (empty text clears it)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}
			text := ""
			if len(args) == 3 {
				text = args[2]
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			grid, err := app.WeeklyCLI.SetCell(context.Background(), item, day, text)
			if err != nil {
				return err
			}
			printGrid(cmd, grid)
			return nil
		},
	})

	week.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Freeze the current week into a snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			snapshot, err := app.WeeklyCLI.SaveSnapshot(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved snapshot of %s (%d rows)\n",
				snapshot.WeekStart, len(snapshot.Rows))
			return nil
		},
	})

	week.AddCommand(&cobra.Command{
		Use:   "snapshots",
		Short: "List saved week snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			snapshots, err := app.WeeklyCLI.ListSnapshots(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(snapshots) == 0 {
				_, _ = fmt.Fprintln(w, "no snapshots")
				return nil
			}
			for _, snap := range snapshots {
				_, _ = fmt.Fprintf(w, "%d. %s  week of %s  (%d rows)\n",
					snap.Index, snap.At.Format(isodate.Layout), snap.WeekStart, len(snap.Rows))
			}
			return nil
		},
	})

	week.AddCommand(&cobra.Command{
		Use:   "forget <snapshot>",
		Short: "Delete one saved snapshot (index 0 is the newest)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			snapshots, err := app.WeeklyCLI.RemoveSnapshot(context.Background(), index)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d snapshots remain\n", len(snapshots))
			return nil
		},
	})
	return week
}

func newResetCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Archive this attempt and start the next cycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			cycle, err := app.ReviewCLI.ResetToRetry(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "archived %s %d/%d点 (%s), score reset\n",
				cycle.Subject, cycle.PrevScore, cycle.Target, cycle.Label)
			return nil
		},
	}
}

func newHistoryCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List archived review cycles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			cycles, err := app.ReviewCLI.History(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(cycles) == 0 {
				_, _ = fmt.Fprintln(w, "no history")
				return nil
			}
			for _, cycle := range cycles {
				_, _ = fmt.Fprintf(w, "%d. %s  %s  %d/%d点  %s\n", cycle.Index,
					cycle.At.Format(isodate.Layout), cycle.Subject, cycle.PrevScore, cycle.Target, cycle.Label)
				for _, sol := range cycle.Solutions {
					_, _ = fmt.Fprintf(w, "     - %s: %s\n", sol.Title, sol.Reason)
				}
			}
			return nil
		},
	}
}

func newReindexCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the sqlite read models from the session file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if err := app.WeeklyCLI.Reindex(ctx); err != nil {
				return fmt.Errorf("reindex snapshots: %w", err)
			}
			if err := app.ReviewCLI.Reindex(ctx); err != nil {
				return fmt.Errorf("reindex cycles: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "read models rebuilt")
			return nil
		},
	}
}

func newCatalogCmd(dataPath *string) *cobra.Command {
	catalog := &cobra.Command{Use: "catalog", Short: "Inspect the study catalog"}

	catalog.AddCommand(&cobra.Command{
		Use:   "subjects",
		Short: "List known subjects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			subjects, err := app.CatalogCLI.ListSubjects(context.Background())
			if err != nil {
				return err
			}
			for _, subject := range subjects {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), subject.Name)
			}
			return nil
		},
	})

	catalog.AddCommand(&cobra.Command{
		Use:   "nodes",
		Short: "List action nodes and their material links",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			nodes, err := app.CatalogCLI.ListNodes(context.Background())
			if err != nil {
				return err
			}
			for _, node := range nodes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s", node.Key, node.Title)
				if node.URL != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s", node.URL)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	catalog.AddCommand(&cobra.Command{
		Use:   "causes [subject]",
		Short: "List the weakness checklist for a subject",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			subject := ""
			if len(args) == 1 {
				subject = args[0]
			} else {
				session, err := app.ProfileCLI.Show(ctx)
				if err != nil {
					return err
				}
				subject = session.Subject
			}
			causes, err := app.CatalogCLI.ListCauses(ctx, subject)
			if err != nil {
				return err
			}
			for _, c := range causes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s（%s）\n", c.Key, c.Label, c.Hint)
			}
			return nil
		},
	})

	catalog.AddCommand(&cobra.Command{
		Use:   "classify <label>",
		Short: "Classify an exam label into a difficulty tier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.Classify(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (fallback: %s)\n",
				out.Label, out.Tier, strings.Join(out.Chain, " → "))
			return nil
		},
	})
	return catalog
}
