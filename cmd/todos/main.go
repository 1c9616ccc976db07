package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayershov777/todos/cmd/todos/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "todos",
		Short: "Personal goal and task tracker",
		Long:  `Todos is a personal goal and task tracker: a REST API server plus a terminal client for registering, logging in, and managing goals, milestones, and tasks.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Client command family
	rootCmd.AddCommand(commands.NewRegisterCommand())
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewDashboardCommand())
	rootCmd.AddCommand(commands.NewGoalsCommand())
	rootCmd.AddCommand(commands.NewTasksCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
