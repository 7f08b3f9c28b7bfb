package main

import (
	"github.com/RAM-73377/jobportaL/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.loggerService.Shutdown()

			return database.Migrate(cmd.Context(), &rt.log, rt.cfg)
		},
	}
}
