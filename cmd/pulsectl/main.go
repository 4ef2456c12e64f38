package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/storage"
	"github.com/comitanigiacomo/kanso-pulse/internal/config"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/metrics"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/services"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	envFile string
	asJSON  bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "pulsectl",
		Short:         "Inspect and edit Kanso Pulse goals and metrics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(newGoalsCmd(opts))
	root.AddCommand(newMetricsCmd(opts))
	root.AddCommand(newTokenCmd(opts))
	return root
}

func (o *rootOptions) logger() *logger.Logger {
	if !o.verbose {
		return logger.Nop()
	}
	log, err := logger.New("dev")
	if err != nil {
		return logger.Nop()
	}
	return log
}

// openGoals loads the goal store from the configured backend. The returned func releases it.
func openGoals(ctx context.Context, opts *rootOptions, out io.Writer) (*services.GoalStore, func(), error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, nil, err
	}

	kv, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store := services.NewGoalStore(kv, cfg.GoalsKey, printNotifier{w: out}, opts.logger())
	if _, err := store.Load(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return store, closeFn, nil
}

func openStore(ctx context.Context, cfg config.Config) (domain.KeyValueStore, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case config.StorageSQLite:
		s, err := storage.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case config.StorageRedis:
		rdb, err := cache.NewRedisClient(ctx, cache.Options{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(rdb, "pulse"), func() { _ = rdb.Close() }, nil

	case config.StoragePostgres:
		db, err := sqlx.Connect(cfg.DBDriver, cfg.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		s, err := storage.NewPostgresStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, func() { _ = db.Close() }, nil

	default:
		return storage.NewMemoryStore(), noop, nil
	}
}

type printNotifier struct {
	w io.Writer
}

func (p printNotifier) Notify(ctx context.Context, n domain.Notification) {
	if n.Variant == domain.VariantDestructive {
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s: %s\n", n.Title, n.Description)
}

func newGoalsCmd(opts *rootOptions) *cobra.Command {
	goals := &cobra.Command{Use: "goals", Short: "List or change goal targets"}

	var period string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List goal targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeFn, err := openGoals(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeFn()

			list := store.List()
			if cmd.Flags().Changed("period") {
				if list, err = store.ListByPeriod(period); err != nil {
					return err
				}
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tTARGET\tUNIT\tPERIOD")
			for _, g := range list {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.Name, strconv.FormatFloat(g.Target, 'f', -1, 64), g.Unit, g.Period)
			}
			return tw.Flush()
		},
	}
	listCmd.Flags().StringVar(&period, "period", "", "only goals with this period (daily, weekly, custom)")

	setCmd := &cobra.Command{
		Use:   "set <name> <target>",
		Short: "Change the target of a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: target %q is not a number", domain.ErrInvalidInput, args[1])
			}

			notices := cmd.OutOrStdout()
			if opts.asJSON {
				notices = cmd.ErrOrStderr()
			}

			store, closeFn, err := openGoals(cmd.Context(), opts, notices)
			if err != nil {
				return err
			}
			defer closeFn()

			goal, err := store.SetTarget(cmd.Context(), args[0], target)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), goal)
			}
			return nil
		},
	}

	// negative targets such as -5 are positional, not shorthand flags
	setCmd.Flags().SetInterspersed(false)

	goals.AddCommand(listCmd, setCmd)
	return goals
}

func newMetricsCmd(opts *rootOptions) *cobra.Command {
	m := &cobra.Command{Use: "metrics", Short: "One-off fitness calculators"}

	var weight, height float64
	bmiCmd := &cobra.Command{
		Use:   "bmi",
		Short: "Body mass index from weight and height",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := metrics.BMI(weight, height)
			if err != nil {
				return err
			}
			res := domain.BMIResult{Value: value, Category: metrics.BMICategory(value)}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "BMI %.1f (%s)\n", res.Value, res.Category)
			return nil
		},
	}
	bmiCmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	bmiCmd.Flags().Float64Var(&height, "height", 0, "height in cm")

	var deficit, goal float64
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Weeks to reach a weekly weight-change goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			weeks, err := metrics.WeightGoalProjection(deficit, goal)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), domain.WeightProjection{WeeksToGoal: weeks, Known: true})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%.1f weeks\n", weeks)
			return nil
		},
	}
	projectCmd.Flags().Float64Var(&deficit, "deficit", 0, "weekly calorie deficit in kcal")
	projectCmd.Flags().Float64Var(&goal, "goal", 0.5, "weight change goal in kg per week")

	m.AddCommand(bmiCmd, projectCmd)
	return m
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the write endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			token, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTDuration).GenerateToken(subject)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "pulsectl", "token subject")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
