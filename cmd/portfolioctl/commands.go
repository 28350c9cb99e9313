package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"portfolio/cmd/api/services"
	"portfolio/config"
)

const (
	commandTimeout = 30 * time.Second
	importTimeout  = 10 * time.Minute
)

// backend is what the commands operate on.
type backend struct {
	Auth     *services.AuthService
	Posts    *services.PostService
	Projects *services.ProjectService
	Seeds    []config.ProjectSeed

	Feeds services.FeedSource
	// Pages loads article pages over HTTP, Render through headless Chrome.
	Pages  services.PageLoader
	Render services.PageLoader
}

type opener func(ctx context.Context) (*backend, func(), error)

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolioctl",
		Short:        "Manage portfolio users and content",
		SilenceUsage: true,
	}
	root.AddCommand(newUserCmd(open), newProjectsCmd(open), newPostsCmd(open))
	return root
}

// run opens the backend with a timeout, runs fn and closes the backend.
func run(cmd *cobra.Command, open opener, fn func(ctx context.Context, b *backend) error) error {
	return runWithin(cmd, open, commandTimeout, fn)
}

func runWithin(cmd *cobra.Command, open opener, timeout time.Duration, fn func(ctx context.Context, b *backend) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	b, closeFn, err := open(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer closeFn()
	return fn(ctx, b)
}

func newUserCmd(open opener) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var email, password, name string
	var admin bool
	create := &cobra.Command{
		Use:     "create",
		Short:   "Create a password user",
		Example: "  portfolioctl user create --email me@example.com --password 'long secret' --name Me --admin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, open, func(ctx context.Context, b *backend) error {
				id, err := b.Auth.CreateUser(ctx, email, name, password, admin)
				if err != nil {
					return err
				}
				role := "user"
				if admin {
					role = "admin"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", role, email, id)
				return nil
			})
		},
	}
	create.Flags().StringVar(&email, "email", "", "email address")
	create.Flags().StringVar(&password, "password", "", "password, at least 8 characters")
	create.Flags().StringVar(&name, "name", "", "display name")
	create.Flags().BoolVar(&admin, "admin", false, "grant the admin role")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	var promoteEmail string
	promote := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to an existing user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, open, func(ctx context.Context, b *backend) error {
				if err := b.Auth.Promote(ctx, promoteEmail); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now an admin\n", promoteEmail)
				return nil
			})
		},
	}
	promote.Flags().StringVar(&promoteEmail, "email", "", "email address")
	_ = promote.MarkFlagRequired("email")

	userCmd.AddCommand(create, promote)
	return userCmd
}

func newProjectsCmd(open opener) *cobra.Command {
	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage showcase projects",
	}
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Insert the seed projects from config.yaml when none exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, open, func(ctx context.Context, b *backend) error {
				n, err := b.Projects.Seed(ctx, b.Seeds)
				if err != nil {
					return err
				}
				if n == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "projects already present, nothing seeded")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects\n", n)
				return nil
			})
		},
	}
	projectsCmd.AddCommand(seed)
	return projectsCmd
}

func newPostsCmd(open opener) *cobra.Command {
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage blog posts",
	}

	var opts services.ImportOptions
	var author string
	var fetch, render bool
	importCmd := &cobra.Command{
		Use:     "import",
		Short:   "Import posts from an RSS or Atom feed",
		Long:    "Creates one post per feed item. Items whose slug already exists are skipped; imported posts are drafts unless --publish is given.",
		Example: "  portfolioctl posts import --feed https://old.example.com/rss --author me@example.com --limit 10 --fetch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithin(cmd, open, importTimeout, func(ctx context.Context, b *backend) error {
				u, err := b.Auth.FindByEmail(ctx, author)
				if err != nil {
					return fmt.Errorf("author %s: %w", author, err)
				}
				opts.AuthorID = u.ID.Hex()

				load := b.Pages
				if render {
					load = b.Render
				}
				opts.FetchArticles = fetch || render

				res, err := services.NewImportService(b.Posts, b.Feeds, load).Import(ctx, opts)
				out := cmd.OutOrStdout()
				for _, slug := range res.Created {
					fmt.Fprintf(out, "created /blog/%s\n", slug)
				}
				for _, sk := range res.Skipped {
					fmt.Fprintf(out, "skipped %q: %s\n", sk.Title, sk.Reason)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "imported %d, skipped %d\n", len(res.Created), len(res.Skipped))
				return nil
			})
		},
	}
	importCmd.Flags().StringVar(&opts.FeedURL, "feed", "", "feed URL")
	importCmd.Flags().StringVar(&author, "author", "", "email of the user the posts are attributed to")
	importCmd.Flags().IntVar(&opts.Limit, "limit", 0, "import at most this many items, 0 means all")
	importCmd.Flags().BoolVar(&opts.Publish, "publish", false, "publish the imported posts")
	importCmd.Flags().BoolVar(&fetch, "fetch", false, "load the linked article when the feed only has a summary")
	importCmd.Flags().BoolVar(&render, "render", false, "like --fetch, but render the article in headless Chrome")
	_ = importCmd.MarkFlagRequired("feed")
	_ = importCmd.MarkFlagRequired("author")

	postsCmd.AddCommand(importCmd)
	return postsCmd
}
