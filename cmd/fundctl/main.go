package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"fund-directory/internal/directory/config"
	"fund-directory/internal/directory/repository"
	"fund-directory/internal/directory/service"
	"fund-directory/internal/entity"
	"fund-directory/pkg/common"
	"fund-directory/pkg/logger"
	"fund-directory/pkg/postgres"
	"fund-directory/pkg/redis"

	"github.com/mmcdole/gofeed"
	"github.com/spf13/cobra"
)

var (
	snapshotPath string
	nowFlag      string
	siteURL      string
	outputPath   string
	configPath   string
	target       string
)

var rootCmd = &cobra.Command{
	Use:   "fundctl",
	Short: "Offline tooling for fund directory snapshots",
	Long:  `fundctl evaluates and renders a fund directory snapshot file without running the service.`,
}

func loadSnapshot(ctx context.Context) (*entity.Snapshot, error) {
	store := service.NewSnapshotStore(repository.NewFileSnapshotSource(snapshotPath), 0, logger.NewNop())
	return store.Load(ctx)
}

func clock() (time.Time, error) {
	if nowFlag == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, nowFlag)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Evaluate pipeline health for a snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		now, err := clock()
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		return printJSON(service.EvaluateHealth(snap, now))
	},
}

var managersCmd = &cobra.Command{
	Use:   "managers",
	Short: "List manager profiles derived from a snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(service.ListManagerProfiles(snap))
	},
}

var renderFeedCmd = &cobra.Command{
	Use:   "render-feed",
	Short: "Render the RSS feed for a snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		doc := service.RenderFeed(snap, service.Channel{
			Title:       "Fund Directory - Latest Fund Announcements",
			SiteURL:     siteURL,
			FeedURL:     strings.TrimRight(siteURL, "/") + "/feed.xml",
			Description: "The most recent fund closings, launches and raises.",
			Language:    "en-us",
		})
		if outputPath == "" || outputPath == "-" {
			_, err = fmt.Fprint(os.Stdout, doc)
			return err
		}
		return os.WriteFile(outputPath, []byte(doc), 0o644)
	},
}

func parseFeed(ctx context.Context, location string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return fp.ParseURLWithContext(location, ctx)
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fp.Parse(f)
}

// uniqueGUIDs rejects a feed where two items share a guid.
func uniqueGUIDs(feed *gofeed.Feed) error {
	seen := make(map[string]bool, len(feed.Items))
	for _, item := range feed.Items {
		if seen[item.GUID] {
			return fmt.Errorf("duplicate guid %q", item.GUID)
		}
		seen[item.GUID] = true
	}
	return nil
}

var verifyFeedCmd = &cobra.Command{
	Use:   "verify-feed <file-or-url>",
	Short: "Parse a rendered feed and check item identifiers are unique",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		feed, err := parseFeed(ctx, args[0])
		if err != nil {
			return fmt.Errorf("feed does not parse: %w", err)
		}
		if err := uniqueGUIDs(feed); err != nil {
			return err
		}
		fmt.Printf("%s: %s feed %q with %d items, guids unique\n", args[0], feed.FeedType, feed.Title, len(feed.Items))
		return nil
	},
}

// readForPublish returns the raw document at path once it decodes as a snapshot.
func readForPublish(path string) ([]byte, *service.DecodeResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	result, err := service.DecodeSnapshot(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("refusing to publish invalid snapshot: %w", err)
	}
	return raw, result, nil
}

// newPublisher connects to the publish target. The returned func releases the connection.
func newPublisher(cfg *config.Config, target string) (repository.SnapshotPublisher, func(), error) {
	switch target {
	case config.SourceRedis:
		client, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisSnapshotPublisher(client.Client, cfg.Snapshot.RedisKey), func() { _ = client.Close() }, nil
	case config.SourcePostgres:
		db, err := postgres.NewDB(postgres.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewPostgresSnapshotPublisher(db.DB), closeDB, nil
	default:
		return nil, nil, fmt.Errorf("unknown publish target %q (want redis or postgres)", target)
	}
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Validate a snapshot file and publish it to Redis or PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, result, err := readForPublish(snapshotPath)
		if err != nil {
			return err
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		publisher, release, err := newPublisher(cfg, target)
		if err != nil {
			return err
		}
		defer release()

		if err := publisher.Publish(cmd.Context(), raw, result.Snapshot); err != nil {
			return err
		}
		fmt.Printf("Published snapshot generated at %s with %d funds (%d dropped) to %s\n",
			result.Snapshot.GeneratedAt.Format(time.RFC3339), len(result.Snapshot.Funds), result.DroppedFunds, target)
		return nil
	},
}

func main() {
	for _, c := range []*cobra.Command{healthCmd, managersCmd, renderFeedCmd, publishCmd} {
		c.Flags().StringVarP(&snapshotPath, "file", "f", common.SnapshotFilePath, "Path to the snapshot JSON file")
	}
	healthCmd.Flags().StringVar(&nowFlag, "now", "", "Evaluate as of this RFC 3339 time instead of the current time")
	renderFeedCmd.Flags().StringVar(&siteURL, "site-url", "http://localhost:8080", "Public site URL used for item links")
	renderFeedCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output file, - for stdout")

	publishCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-directory.yaml", "Path to the configuration file")
	publishCmd.Flags().StringVarP(&target, "target", "t", config.SourceRedis, "Where to publish: redis or postgres")

	rootCmd.AddCommand(healthCmd, managersCmd, renderFeedCmd, verifyFeedCmd, publishCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'\n", err)
		os.Exit(1)
	}
}
