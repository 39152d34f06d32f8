package cli

import (
	"fmt"
	"strings"

	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")
			if err := validateDescription(description); err != nil {
				return err
			}

			created, err := opts.app.Service().Add(cmd.Context(), description, due)
			if err != nil {
				return fail(err)
			}
			if due != "" && created.DueDate == nil {
				logger.Warn("CLI: Срок не распознан, задача добавлена без срока", zap.String("due", due))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Task added successfully! (ID %d)\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&due, "due", "d", "", "due date: today or tomorrow")
	return cmd
}

func newListCommand(opts *rootOptions) *cobra.Command {
	var (
		all     bool
		overdue bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks (incomplete only unless --all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := opts.app.Service()

			var (
				tasks []*task.Task
				err   error
			)
			if overdue {
				tasks, err = svc.Overdue(cmd.Context())
			} else {
				tasks, err = svc.List(cmd.Context(), all)
			}
			if err != nil {
				return fail(err)
			}

			return fail(renderTasks(cmd.OutOrStdout(), tasks, tableOptions{
				showCompleted: all && !overdue,
				now:           opts.now(),
			}))
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include completed tasks")
	cmd.Flags().BoolVar(&overdue, "overdue", false, "only incomplete tasks past their due date")
	return cmd
}

func newCompleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			ok, err := opts.app.Service().Complete(cmd.Context(), id)
			if err != nil {
				return fail(err)
			}
			if !ok {
				return service.NewNotFound(id)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Task marked as complete!")
			return nil
		},
	}
}

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			ok, err := opts.app.Service().Delete(cmd.Context(), id)
			if err != nil {
				return fail(err)
			}
			if !ok {
				return service.NewNotFound(id)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Task deleted successfully!")
			return nil
		},
	}
}

func newShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			t, err := opts.app.Service().Get(cmd.Context(), id)
			if err != nil {
				if _, ok := err.(*service.BusinessError); ok {
					return err
				}
				return fail(err)
			}

			return fail(renderTasks(cmd.OutOrStdout(), []*task.Task{t}, tableOptions{
				showCompleted: true,
				now:           opts.now(),
			}))
		},
	}
}

func newDoctorCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the tasks file can be locked and read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.Service().HealthCheck(cmd.Context()); err != nil {
				return fail(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Store %s is OK.\n", opts.app.Config().Storage.Path)
			return nil
		},
	}
}
