package main

import (
	"github.com/RAM-73377/jobportaL/internal/database"
	"github.com/RAM-73377/jobportaL/internal/lib/utils"
	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/repository"
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/RAM-73377/jobportaL/internal/service"
	"github.com/spf13/cobra"
)

func newPostsCmd() *cobra.Command {
	posts := &cobra.Command{
		Use:   "posts",
		Short: "Manage blog posts",
	}

	posts.AddCommand(newPostsCreateCmd())
	return posts
}

func newPostsCreateCmd() *cobra.Command {
	var payload model.CreateBlogPostPayload

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a blog post",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.loggerService.Shutdown()

			db, err := database.New(rt.cfg, &rt.log, rt.loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			srv := &server.Server{
				Config:        rt.cfg,
				Logger:        &rt.log,
				LoggerService: rt.loggerService,
				DB:            db,
			}

			blogService := service.NewBlogService(srv, repository.NewBlogPostRepository(db.Pool))
			post, err := blogService.Create(cmd.Context(), &payload)
			if err != nil {
				return err
			}

			return utils.PrintJSON(cmd.OutOrStdout(), post)
		},
	}

	cmd.Flags().StringVar(&payload.Title, "title", "", "post title (at most 200 characters)")
	cmd.Flags().StringVar(&payload.Description, "description", "", "short summary")
	cmd.Flags().StringVar(&payload.Content, "content", "", "post body")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}
