package admintools

import (
	"context"
	"fmt"
	"os"

	"github.com/Tnecniv1/mathbank-sub001/src/auth"
	"github.com/Tnecniv1/mathbank-sub001/src/db"
	"github.com/Tnecniv1/mathbank-sub001/src/website"
	"github.com/spf13/cobra"
)

func init() {
	adminCommand := &cobra.Command{
		Use:   "admin",
		Short: "Admin commands for managing users",
	}

	createUserCommand := &cobra.Command{
		Use:   "createuser <username> <password>",
		Short: "Create a new user account",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				fmt.Printf("You must provide a username and a password.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			err := auth.CreateUser(ctx, conn, args[0], args[1])
			if err != nil {
				panic(err)
			}
			fmt.Printf("Created user %s\n", args[0])
		},
	}

	setPasswordCommand := &cobra.Command{
		Use:   "setpassword <username> <new password>",
		Short: "Replace a user's password",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				fmt.Printf("You must provide a username and a password.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			err := auth.SetPassword(ctx, conn, args[0], args[1])
			if err != nil {
				panic(err)
			}
			fmt.Printf("Updated password for %s\n", args[0])
		},
	}

	adminCommand.AddCommand(createUserCommand)
	adminCommand.AddCommand(setPasswordCommand)
	website.WebsiteCommand.AddCommand(adminCommand)
}
