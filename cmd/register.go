package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/motorlab/ephys-catalog/internal/repositories"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register monkeys, rigs and users in the catalog",
}

var registerMonkeyCmd = &cobra.Command{
	Use:   "monkey [name]",
	Short: "Register a subject",
	Args:  cobra.ExactArgs(1),
	RunE:  registerRunE("monkey"),
}

var registerRigCmd = &cobra.Command{
	Use:   "rig [name]",
	Short: "Register a rig",
	Args:  cobra.ExactArgs(1),
	RunE:  registerRunE("rig"),
}

var registerUserCmd = &cobra.Command{
	Use:   "user [username]",
	Short: "Register a lab member",
	Args:  cobra.ExactArgs(1),
	RunE:  registerRunE("user"),
}

func registerRunE(kind string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		name := args[0]
		switch kind {
		case "monkey":
			_, err = repositories.EnsureMonkey(ctx, db, name)
		case "rig":
			_, err = repositories.EnsureRig(ctx, db, name)
		case "user":
			_, err = repositories.EnsureUser(ctx, db, name)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Registered %s %q\n", kind, name)
		return nil
	}
}

func init() {
	registerCmd.AddCommand(registerMonkeyCmd, registerRigCmd, registerUserCmd)
	rootCmd.AddCommand(registerCmd)
}
