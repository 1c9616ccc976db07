package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayershov777/todos/internal/domain/entities"
	"github.com/ayershov777/todos/internal/ports"
	"github.com/ayershov777/todos/pkg/client"
)

const defaultServerURL = "http://localhost:5000"

// serverURL resolves the API address for client commands.
func serverURL() string {
	if url := os.Getenv("TODOS_SERVER"); url != "" {
		return url
	}
	return defaultServerURL
}

// newAPIClient builds a client carrying the persisted session token. Commands
// that require authentication fail with a login hint when no token is held.
func newAPIClient(requireAuth bool) (*client.Client, *client.SessionStore) {
	c := client.New(serverURL())

	store, err := client.NewSessionStore(os.Getenv("TODOS_SESSION_FILE"))
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}

	token, err := store.Load()
	if err != nil {
		if !errors.Is(err, client.ErrNotLoggedIn) {
			log.Fatalf("Failed to read session: %v", err)
		}
		if requireAuth {
			log.Fatal("Not logged in. Run 'todos login' first.")
		}
		return c, store
	}
	c.SetToken(token)

	return c, store
}

// NewRegisterCommand creates the register command
func NewRegisterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			if username == "" || email == "" || password == "" {
				log.Fatal("Username, email and password are required")
			}

			c, _ := newAPIClient(false)
			if err := c.Register(context.Background(), username, email, password); err != nil {
				log.Fatalf("Registration failed: %v", err)
			}

			fmt.Println("Account created. Run 'todos login' to sign in.")
		},
	}

	cmd.Flags().StringP("username", "u", "", "Username (required)")
	cmd.Flags().StringP("email", "e", "", "Email (required)")
	cmd.Flags().StringP("password", "p", "", "Password (required)")
	return cmd
}

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session token",
		Run: func(cmd *cobra.Command, args []string) {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			if email == "" || password == "" {
				log.Fatal("Email and password are required")
			}

			c, store := newAPIClient(false)
			token, err := c.Login(context.Background(), email, password)
			if err != nil {
				log.Fatalf("Login failed: %v", err)
			}

			if err := store.Save(token); err != nil {
				log.Fatalf("Failed to persist session: %v", err)
			}

			fmt.Println("Logged in.")
		},
	}

	cmd.Flags().StringP("email", "e", "", "Email (required)")
	cmd.Flags().StringP("password", "p", "", "Password (required)")
	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session token",
		Run: func(cmd *cobra.Command, args []string) {
			store, err := client.NewSessionStore(os.Getenv("TODOS_SESSION_FILE"))
			if err != nil {
				log.Fatalf("Failed to open session store: %v", err)
			}
			if err := store.Clear(); err != nil {
				log.Fatalf("Logout failed: %v", err)
			}
			fmt.Println("Logged out.")
		},
	}
}

// NewDashboardCommand renders aggregate completion statistics. The counts are
// derived entirely from the two list endpoints; the server has no dedicated
// aggregation route.
func NewDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show goal and task completion statistics",
		Run: func(cmd *cobra.Command, args []string) {
			c, _ := newAPIClient(true)
			ctx := context.Background()

			goals, err := c.Goals(ctx)
			if err != nil {
				log.Fatalf("Failed to fetch goals: %v", err)
			}
			tasks, err := c.Tasks(ctx)
			if err != nil {
				log.Fatalf("Failed to fetch tasks: %v", err)
			}

			completedGoals, completedTasks := completionStats(goals, tasks)
			fmt.Printf("Goals: %d/%d completed\n", completedGoals, len(goals))
			fmt.Printf("Tasks: %d/%d completed\n", completedTasks, len(tasks))

			if len(goals) > 0 {
				fmt.Println("\nRecent goals:")
				for i, g := range goals {
					if i == 3 {
						break
					}
					fmt.Printf("  %s %s\n", checkbox(g.Completed), g.Title)
				}
			}

			if len(tasks) > 0 {
				fmt.Println("\nRecent tasks:")
				for i, t := range tasks {
					if i == 5 {
						break
					}
					fmt.Printf("  %s %s\n", checkbox(t.Completed), t.Title)
				}
			}
		},
	}
}

// NewGoalsCommand creates the goals command family
func NewGoalsCommand() *cobra.Command {
	goalsCmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage goals",
	}

	goalsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List goals with their milestones",
		Run: func(cmd *cobra.Command, args []string) {
			c, _ := newAPIClient(true)

			goals, err := c.Goals(context.Background())
			if err != nil {
				log.Fatalf("Failed to fetch goals: %v", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDONE\tTITLE\tTARGET\tMILESTONES")
			for _, g := range goals {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					g.ID, checkbox(g.Completed), g.Title, formatDate(g.TargetDate), len(g.Milestones))
			}
			w.Flush()

			for _, g := range goals {
				for _, m := range g.Milestones {
					fmt.Printf("  %s %s (%s) due %s\n", checkbox(m.Completed), m.Title, m.ID, formatDate(m.DueDate))
				}
			}
		},
	})

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		Run: func(cmd *cobra.Command, args []string) {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			target, _ := cmd.Flags().GetString("target")

			if title == "" {
				log.Fatal("Title is required")
			}

			req := ports.CreateGoalRequest{Title: title, Description: description}
			if target != "" {
				t, err := time.Parse("2006-01-02", target)
				if err != nil {
					log.Fatalf("Invalid target date (want YYYY-MM-DD): %v", err)
				}
				req.TargetDate = entities.NewDate(t)
			}

			c, _ := newAPIClient(true)
			goal, err := c.CreateGoal(context.Background(), req)
			if err != nil {
				log.Fatalf("Failed to create goal: %v", err)
			}

			fmt.Printf("Created goal %s\n", goal.ID)
		},
	}
	addCmd.Flags().StringP("title", "t", "", "Goal title (required)")
	addCmd.Flags().StringP("description", "d", "", "Goal description")
	addCmd.Flags().String("target", "", "Target date (YYYY-MM-DD)")
	goalsCmd.AddCommand(addCmd)

	doneCmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle a goal's completion flag",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, _ := newAPIClient(true)
			ctx := context.Background()

			goal, err := c.GetGoal(ctx, args[0])
			if err != nil {
				log.Fatalf("Failed to fetch goal: %v", err)
			}

			completed := !goal.Completed
			if _, err := c.UpdateGoal(ctx, args[0], ports.UpdateGoalRequest{Completed: &completed}); err != nil {
				log.Fatalf("Failed to update goal: %v", err)
			}

			fmt.Printf("Goal marked %s\n", completedWord(completed))
		},
	}
	goalsCmd.AddCommand(doneCmd)

	goalsCmd.AddCommand(&cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, _ := newAPIClient(true)
			if err := c.DeleteGoal(context.Background(), args[0]); err != nil {
				log.Fatalf("Failed to delete goal: %v", err)
			}
			fmt.Println("Goal deleted.")
		},
	})

	milestoneCmd := &cobra.Command{
		Use:   "milestone [goal-id]",
		Short: "Add a milestone to a goal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			due, _ := cmd.Flags().GetString("due")

			if title == "" {
				log.Fatal("Title is required")
			}

			c, _ := newAPIClient(true)
			ctx := context.Background()

			goal, err := c.GetGoal(ctx, args[0])
			if err != nil {
				log.Fatalf("Failed to fetch goal: %v", err)
			}

			// Resubmit the existing milestones plus the new one; the server
			// assigns the new identifier.
			inputs := make([]ports.MilestoneInput, 0, len(goal.Milestones)+1)
			for _, m := range goal.Milestones {
				inputs = append(inputs, ports.MilestoneInput{
					ID:          m.ID,
					Title:       m.Title,
					Description: m.Description,
					DueDate:     m.DueDate,
					Completed:   m.Completed,
				})
			}

			next := ports.MilestoneInput{Title: title, Description: description}
			if due != "" {
				t, err := time.Parse("2006-01-02", due)
				if err != nil {
					log.Fatalf("Invalid due date (want YYYY-MM-DD): %v", err)
				}
				next.DueDate = entities.NewDate(t)
			}
			inputs = append(inputs, next)

			updated, err := c.UpdateGoal(ctx, args[0], ports.UpdateGoalRequest{Milestones: &inputs})
			if err != nil {
				log.Fatalf("Failed to add milestone: %v", err)
			}

			added := updated.Milestones[len(updated.Milestones)-1]
			fmt.Printf("Added milestone %s\n", added.ID)
		},
	}
	milestoneCmd.Flags().StringP("title", "t", "", "Milestone title (required)")
	milestoneCmd.Flags().StringP("description", "d", "", "Milestone description")
	milestoneCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	goalsCmd.AddCommand(milestoneCmd)

	return goalsCmd
}

// NewTasksCommand creates the tasks command family
func NewTasksCommand() *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tasks with linked goal and milestone titles",
		Run: func(cmd *cobra.Command, args []string) {
			c, _ := newAPIClient(true)
			ctx := context.Background()

			tasks, err := c.Tasks(ctx)
			if err != nil {
				log.Fatalf("Failed to fetch tasks: %v", err)
			}

			// Goal and milestone titles are resolved here by cross-referencing
			// the goals list; tasks only carry identifiers.
			goals, err := c.Goals(ctx)
			if err != nil {
				log.Fatalf("Failed to fetch goals: %v", err)
			}
			byID := make(map[string]*entities.Goal, len(goals))
			for _, g := range goals {
				byID[g.ID] = g
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDONE\tTITLE\tDUE\tGOAL\tMILESTONE")
			for _, t := range tasks {
				goalTitle, milestoneTitle := "-", "-"
				if t.GoalID != nil {
					if g, ok := byID[*t.GoalID]; ok {
						goalTitle = g.Title
						if t.MilestoneID != nil {
							if m, ok := g.Milestone(*t.MilestoneID); ok {
								milestoneTitle = m.Title
							}
						}
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, checkbox(t.Completed), t.Title, formatDate(t.DueDate), goalTitle, milestoneTitle)
			}
			w.Flush()
		},
	})

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Run: func(cmd *cobra.Command, args []string) {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			due, _ := cmd.Flags().GetString("due")
			goalID, _ := cmd.Flags().GetString("goal")
			milestoneID, _ := cmd.Flags().GetString("milestone")

			if title == "" {
				log.Fatal("Title is required")
			}

			req := ports.CreateTaskRequest{Title: title, Description: description}
			if due != "" {
				t, err := time.Parse("2006-01-02", due)
				if err != nil {
					log.Fatalf("Invalid due date (want YYYY-MM-DD): %v", err)
				}
				req.DueDate = entities.NewDate(t)
			}
			if goalID != "" {
				req.GoalID = &goalID
			}
			if milestoneID != "" {
				req.MilestoneID = &milestoneID
			}

			c, _ := newAPIClient(true)
			task, err := c.CreateTask(context.Background(), req)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) {
					log.Fatalf("Failed to create task: %s", apiErr.Message)
				}
				log.Fatalf("Failed to create task: %v", err)
			}

			fmt.Printf("Created task %s\n", task.ID)
		},
	}
	addCmd.Flags().StringP("title", "t", "", "Task title (required)")
	addCmd.Flags().StringP("description", "d", "", "Task description")
	addCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().String("goal", "", "Linked goal id")
	addCmd.Flags().String("milestone", "", "Linked milestone id (its goal is resolved server-side)")
	tasksCmd.AddCommand(addCmd)

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "done [id]",
		Short: "Toggle a task's completion flag",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, _ := newAPIClient(true)
			ctx := context.Background()

			task, err := c.GetTask(ctx, args[0])
			if err != nil {
				log.Fatalf("Failed to fetch task: %v", err)
			}

			completed := !task.Completed
			if _, err := c.UpdateTask(ctx, args[0], ports.UpdateTaskRequest{Completed: &completed}); err != nil {
				log.Fatalf("Failed to update task: %v", err)
			}

			fmt.Printf("Task marked %s\n", completedWord(completed))
		},
	})

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, _ := newAPIClient(true)
			if err := c.DeleteTask(context.Background(), args[0]); err != nil {
				log.Fatalf("Failed to delete task: %v", err)
			}
			fmt.Println("Task deleted.")
		},
	})

	return tasksCmd
}

// completionStats counts completed goals and tasks for the dashboard view.
func completionStats(goals []*entities.Goal, tasks []*entities.Task) (int, int) {
	completedGoals := 0
	for _, g := range goals {
		if g.Completed {
			completedGoals++
		}
	}
	completedTasks := 0
	for _, t := range tasks {
		if t.Completed {
			completedTasks++
		}
	}
	return completedGoals, completedTasks
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func completedWord(done bool) string {
	if done {
		return "completed"
	}
	return "incomplete"
}

func formatDate(d entities.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format("2006-01-02")
}
