// Command portfolioctl is the operator CLI: it manages users, seeds projects and imports posts.
package main

import (
	"context"
	"os"
	"time"

	"portfolio/cmd/api/httpclient"
	"portfolio/cmd/api/services"
	"portfolio/config"
	"portfolio/db"
	"portfolio/eventbus"
	"portfolio/feeder"
	"portfolio/internal/logger"
	"portfolio/renderer"
	"portfolio/repositories"
)

func main() {
	cmd := newRootCmd(openMongo)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openMongo connects to the configured database and builds the services the commands use.
func openMongo(ctx context.Context) (*backend, func(), error) {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(ctx); err != nil {
		return nil, nil, err
	}
	eventbus.SetContentTopic(cfg.Kafka.Topic)
	bus, err := eventbus.New(cfg.Kafka.Brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus, events will only be logged: %v", err)
		bus = eventbus.NewLogEventBus()
	}

	closeFn := func() {
		bus.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Disconnect(ctx)
	}

	database := db.Database()
	client := httpclient.New(httpclient.Config{Timeout: 20 * time.Second, UserAgent: renderer.USER_AGENT})
	return &backend{
		Auth:     services.NewAuthService(repositories.NewUserRepository(database), nil, nil),
		Posts:    services.NewPostService(repositories.NewBlogPostRepository(database), bus, cfg.Server.BaseURL),
		Projects: services.NewProjectService(repositories.NewProjectRepository(database)),
		Seeds:    cfg.SeedProjects,
		Feeds:    feeder.New(client),
		Pages:    services.HTTPPageLoader(client),
		Render:   renderer.RenderHTML,
	}, closeFn, nil
}
