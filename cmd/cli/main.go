package main

import (
	"bufio"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/internal/config"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/internal/prefs"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/api"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/holidayclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/leaveclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/notificationclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/userclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/calendar"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/services"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg           *config.Config
	prefs         prefs.Prefs
	leaveClient   *leaveclient.Client
	holidayClient *holidayclient.Client
	notifClient   *notificationclient.Client
	userClient    *userclient.Client
	logger        *zap.Logger
	ctx           context.Context
}

var (
	env string
	app *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "leavectl",
		Short: "Leave & Attendance CLI - Manage leave requests and approvals",
		Long:  `A CLI dashboard for submitting leave requests, approving or rejecting team requests, and checking team availability, holidays and notifications.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(listRequestsCmd())
	rootCmd.AddCommand(viewRequestCmd())
	rootCmd.AddCommand(submitRequestCmd())
	rootCmd.AddCommand(teamCmd())
	rootCmd.AddCommand(pendingCmd())
	rootCmd.AddCommand(approveCmd())
	rootCmd.AddCommand(rejectCmd())
	rootCmd.AddCommand(attachmentsCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(notificationsCmd())
	rootCmd.AddCommand(markReadCmd())
	rootCmd.AddCommand(markAllReadCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(prefsCmd())
	rootCmd.AddCommand(interactiveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, preferences and the backend clients
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	// Initialize logger
	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.logger.Info("Loading configuration")
	app.cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	// Load UI preferences (missing file is fine)
	app.prefs, err = prefs.Load()
	if err != nil {
		app.logger.Warn("Failed to load preferences, using defaults", zap.Error(err))
		app.prefs = prefs.Prefs{}
	}

	// Initialize the shared REST transport with the ambient session cookie
	opts := []api.Option{
		api.WithSessionCookie(app.cfg.SessionCookieName, app.cfg.SessionCookie),
	}
	if app.cfg.TimeoutSeconds > 0 {
		opts = append(opts, api.WithTimeout(time.Duration(app.cfg.TimeoutSeconds)*time.Second))
	}
	transport, err := api.NewClient(app.cfg.BaseURL, opts...)
	if err != nil {
		return fmt.Errorf("failed to create API transport: %w", err)
	}

	app.leaveClient = leaveclient.NewClient(transport)
	app.holidayClient = holidayclient.NewClient(transport)
	app.notifClient = notificationclient.NewClient(transport)
	app.userClient = userclient.NewClient(transport)
	app.logger.Info("Backend clients initialized", zap.String("base_url", app.cfg.BaseURL))

	return nil
}

// Command definitions

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show recent requests, upcoming holidays and unread notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := services.DashboardSummary(app.ctx, app.leaveClient, app.holidayClient, app.notifClient, app.logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nRecent leave requests:\n")
			if len(summary.RecentRequests) == 0 {
				fmt.Println("  (none)")
			}
			for _, r := range summary.RecentRequests {
				printRequestLine(r)
			}

			fmt.Printf("\nUpcoming holidays:\n")
			for _, h := range summary.UpcomingHolidays {
				fmt.Printf("  %s  %s\n", h.Date, h.Name)
			}

			fmt.Printf("\nUnread notifications: %d\n\n", summary.UnreadCount)
			return nil
		},
	}
}

func listRequestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your own leave requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			page, _ := cmd.Flags().GetInt("page")
			perPage, _ := cmd.Flags().GetInt("per-page")
			if perPage == 0 {
				perPage = app.prefs.EffectivePageSize()
			}

			resp, err := app.leaveClient.MyLeaveRequests(app.ctx, leaveclient.Filters{
				Status:  model.LeaveStatus(status),
				Page:    page,
				PerPage: perPage,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d leave requests (page %d/%d):\n\n",
				resp.Pagination.Total, resp.Pagination.Page, resp.Pagination.TotalPages)
			for _, r := range resp.LeaveRequests {
				printRequestLine(r)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by status (pending, approved, rejected)")
	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("per-page", 0, "Items per page")

	return cmd
}

func viewRequestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "View the full detail of a leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be a number: %w", err)
			}

			request, err := app.leaveClient.GetLeaveRequest(app.ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("\nLeave request %s\n\n", request.RequestID)
			if request.User != nil {
				fmt.Printf("Requester:  %s\n", request.User.FullName())
			}
			fmt.Printf("Type:       %s\n", request.LeaveType.Name)
			fmt.Printf("Dates:      %s to %s (%.1f days)\n", request.StartDate, request.EndDate, request.DaysCount)
			fmt.Printf("Status:     %s\n", request.Status)
			fmt.Printf("Reason:     %s\n", request.Reason)
			if request.ProxyPerson != nil {
				fmt.Printf("Proxy:      %s\n", request.ProxyPerson.FullName())
			}
			if request.Approver != nil {
				fmt.Printf("Approver:   %s (%s)\n", request.Approver.FullName(), request.ApprovedAt)
			}
			if request.RejectionReason != "" {
				fmt.Printf("Rejected:   %s\n", request.RejectionReason)
			}
			fmt.Println()
			return nil
		},
	}
}

func submitRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new leave request, optionally with attachments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			leaveTypeID, _ := cmd.Flags().GetInt("type")
			startDate, _ := cmd.Flags().GetString("start")
			endDate, _ := cmd.Flags().GetString("end")
			reason, _ := cmd.Flags().GetString("reason")
			proxyID, _ := cmd.Flags().GetInt("proxy")
			paths, _ := cmd.Flags().GetStringSlice("attach")

			draft := services.Draft{
				LeaveTypeID: leaveTypeID,
				StartDate:   startDate,
				EndDate:     endDate,
				Reason:      reason,
				ProxyUserID: proxyID,
			}
			if err := services.ValidateDraft(draft); err != nil {
				return err
			}

			// Warn about weekend/holiday overlap before submitting
			if err := printRangeConflicts(draft); err != nil {
				app.logger.Warn("Could not check holiday conflicts", zap.Error(err))
			}

			// Client-side file filter at selection time
			selected, err := openFiles(paths)
			if err != nil {
				return err
			}
			valid, rejected := services.FilterFiles(selected,
				app.cfg.Attachments.MaxSizeBytes, app.cfg.Attachments.AllowedTypes)
			for _, r := range rejected {
				fmt.Printf("✗ Skipping %s: %s\n", r.Name, r.Reason)
			}

			result, err := services.SubmitLeaveRequest(app.ctx, app.leaveClient, app.logger, draft, valid)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Leave request %s created (%s to %s)\n",
				result.Request.RequestID, result.Request.StartDate, result.Request.EndDate)

			for _, u := range result.Uploads {
				if u.Err != nil {
					fmt.Printf("  ✗ %s: upload failed: %v\n", u.FileName, u.Err)
				} else {
					fmt.Printf("  ✓ %s uploaded\n", u.FileName)
				}
			}
			if failed := result.FailedUploads(); len(failed) > 0 {
				fmt.Printf("\n⚠ %d attachment(s) failed to upload. The request itself was created; re-run the uploads for the files listed above.\n", len(failed))
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Int("type", 0, "Leave type ID")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().String("reason", "", "Reason for the leave")
	cmd.Flags().Int("proxy", 0, "Proxy person user ID")
	cmd.Flags().StringSlice("attach", nil, "Attachment file paths (repeatable)")

	return cmd
}

func teamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "Show the team availability board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.TeamStatus(app.ctx, app.userClient, app.leaveClient, app.logger, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("\nTeam of %s (%d members, %d on leave):\n\n",
				result.Viewer.FirstName, len(result.Members), result.OnLeaveCount())
			for _, m := range result.Members {
				if m.Status.OnLeave {
					fmt.Printf("  ✗ %-24s on %s until %s\n", m.Member.FullName(), m.Status.LeaveType, m.Status.EndDate)
				} else {
					fmt.Printf("  ✓ %-24s available\n", m.Member.FullName())
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func pendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List team requests awaiting your decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetInt("user")
			leaveTypeID, _ := cmd.Flags().GetInt("leave-type")

			resp, err := app.leaveClient.PendingLeaveRequests(app.ctx, leaveclient.TeamFilters{
				Filters:     leaveclient.Filters{PerPage: app.prefs.EffectivePageSize()},
				UserID:      userID,
				LeaveTypeID: leaveTypeID,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n%d requests pending approval:\n\n", resp.Pagination.Total)
			for _, r := range resp.LeaveRequests {
				printRequestLine(r)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Int("user", 0, "Filter by requester user ID")
	cmd.Flags().Int("leave-type", 0, "Filter by leave type ID")

	return cmd
}

func approveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be a number: %w", err)
			}

			request, err := app.leaveClient.GetLeaveRequest(app.ctx, id)
			if err != nil {
				return err
			}
			decision, err := services.ApproveRequest(app.ctx, app.leaveClient, app.logger, request)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Request %s approved by %s at %s\n\n",
				decision.RequestID, decision.Approver.FullName(), decision.ApprovedAt)
			return nil
		},
	}
}

func rejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <id> <reason>",
		Short: "Reject a pending leave request with a reason",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be a number: %w", err)
			}
			reason := strings.Join(args[1:], " ")

			request, err := app.leaveClient.GetLeaveRequest(app.ctx, id)
			if err != nil {
				return err
			}
			decision, err := services.RejectRequest(app.ctx, app.leaveClient, app.logger, request, reason)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Request %s rejected by %s\n  Reason: %s\n\n",
				decision.RequestID, decision.Approver.FullName(), decision.RejectionReason)
			return nil
		},
	}
}

func attachmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attachments <id>",
		Short: "List the attachments of a leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be a number: %w", err)
			}

			attachments, err := app.leaveClient.ListAttachments(app.ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("\n%d attachment(s):\n\n", len(attachments))
			for _, a := range attachments {
				fmt.Printf("  %s (%s, %d bytes) uploaded %s\n", a.FileName, a.FileType, a.FileSize, a.UploadedAt)
			}
			fmt.Println()
			return nil
		},
	}
}

func holidaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays [year]",
		Short: "List holidays for a year (defaults to upcoming)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			if len(args) == 0 {
				upcoming, err := app.holidayClient.Upcoming(app.ctx, limit)
				if err != nil {
					return err
				}
				fmt.Printf("\nUpcoming holidays:\n\n")
				for _, h := range upcoming {
					fmt.Printf("  %s  %s\n", h.Date, h.Name)
				}
				fmt.Println()
				return nil
			}

			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be a number: %w", err)
			}

			holidays, err := app.holidayClient.ForYear(app.ctx, year)
			if err != nil {
				return err
			}

			// Merge the configured recurring closures into the calendar
			closures, err := calendar.ExpandRecurringClosures(closureRules(app.cfg), year)
			if err != nil {
				return err
			}
			merged := calendar.MergeHolidays(holidays, closures)

			fmt.Printf("\nHolidays in %d (%d backend, %d company closures):\n\n", year, len(holidays), len(closures))
			for _, h := range merged {
				fmt.Printf("  %s  %s\n", h.Date, h.Name)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Int("limit", 5, "Number of upcoming holidays to show")

	return cmd
}

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List your notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unreadOnly, _ := cmd.Flags().GetBool("unread")

			inbox, err := services.FetchInbox(app.ctx, app.notifClient, app.logger, notificationclient.Filters{
				UnreadOnly: unreadOnly,
				PerPage:    app.prefs.EffectivePageSize(),
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n%d notification(s), %d unread:\n\n", len(inbox.Notifications), inbox.UnreadCount)
			for _, n := range inbox.Notifications {
				marker := " "
				if !n.IsRead {
					marker = "*"
				}
				fmt.Printf("  %s [%d] %s — %s\n", marker, n.ID, n.Title, n.Message)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Bool("unread", false, "Only show unread notifications")

	return cmd
}

func markReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markRead <id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be a number: %w", err)
			}

			if err := app.notifClient.MarkRead(app.ctx, id); err != nil {
				return err
			}
			fmt.Printf("✓ Notification %d marked as read\n", id)
			return nil
		},
	}
}

func markAllReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markAllRead",
		Short: "Mark every notification as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.MarkAllNotificationsRead(app.ctx, app.notifClient, app.logger); err != nil {
				return err
			}
			fmt.Println("✓ All notifications marked as read")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show your profile and leave quotas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.userClient.Me(app.ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s %s (%s)\n", profile.FirstName, profile.LastName, profile.EmployeeID)
			fmt.Printf("Department: %s\n", profile.Department)
			if profile.Manager != nil {
				fmt.Printf("Manager:    %s\n", profile.Manager.FullName())
			}
			if profile.IsManager {
				fmt.Println("Role:       manager")
			}
			if len(profile.LeaveQuotas) > 0 {
				fmt.Printf("\nLeave quotas:\n")
				for _, q := range profile.LeaveQuotas {
					fmt.Printf("  %-20s %.1f used / %.1f total (%.1f left)\n",
						q.LeaveType.Name, q.Used, q.Total, q.Remaining)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change saved UI preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := false
			if cmd.Flags().Changed("page-size") {
				size, _ := cmd.Flags().GetInt("page-size")
				app.prefs.PageSize = size
				changed = true
			}
			if cmd.Flags().Changed("compact") {
				compact, _ := cmd.Flags().GetBool("compact")
				app.prefs.CompactLists = compact
				changed = true
			}

			if changed {
				if err := prefs.Save(app.prefs); err != nil {
					return err
				}
				fmt.Println("✓ Preferences saved")
			}

			fmt.Printf("\nPage size:     %d\n", app.prefs.EffectivePageSize())
			fmt.Printf("Compact lists: %v\n\n", app.prefs.CompactLists)
			return nil
		},
	}

	cmd.Flags().Int("page-size", 0, "Default items per page")
	cmd.Flags().Bool("compact", false, "Use compact list output")

	return cmd
}

func interactiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (load config once, run multiple commands)",
		Long: `Start an interactive session where you can run multiple commands without reloading configuration.
The session will keep running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\nStarting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			// Get all sibling commands (excluding interactive itself)
			rootCmd := cmd.Parent()
			commands := make(map[string]*cobra.Command)
			for _, subCmd := range rootCmd.Commands() {
				if subCmd.Name() != "interactive" && subCmd.Name() != "completion" && subCmd.Name() != "help" {
					commands[subCmd.Name()] = subCmd
				}
			}

			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				// Parse command
				parts := strings.Fields(line)
				cmdName := parts[0]
				cmdArgs := parts[1:]

				// Handle exit
				if cmdName == "exit" || cmdName == "quit" {
					fmt.Println("Goodbye!")
					return nil
				}

				// Handle help
				if cmdName == "help" {
					printInteractiveHelp(commands)
					continue
				}

				// Execute command via Cobra
				targetCmd, exists := commands[cmdName]
				if !exists {
					fmt.Printf("Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
					continue
				}

				// Reset command flags and args
				targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
					flag.Changed = false
					flag.Value.Set(flag.DefValue)
				})

				// Execute the command's RunE directly, bypassing the full Execute() flow
				// This avoids re-running PersistentPreRunE which would call initApp() again
				if err := targetCmd.ParseFlags(cmdArgs); err != nil {
					fmt.Printf("Error parsing flags: %v\n\n", err)
					continue
				}

				// Get non-flag args after parsing flags
				cmdArgs = targetCmd.Flags().Args()

				// Validate args
				if err := targetCmd.Args(targetCmd, cmdArgs); err != nil {
					fmt.Printf("Error: %v\n\n", err)
					continue
				}

				// Execute the RunE function directly
				if targetCmd.RunE != nil {
					if err := targetCmd.RunE(targetCmd, cmdArgs); err != nil {
						fmt.Printf("Error: %v\n\n", err)
					}
				} else if targetCmd.Run != nil {
					targetCmd.Run(targetCmd, cmdArgs)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}

	return cmd
}

func printInteractiveHelp(commands map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("  %-30s %s\n", cmd.Use, cmd.Short)
	}

	fmt.Println("\n  help                           Show this help message")
	fmt.Println("  exit, quit                     Exit the interactive session")
}

// Helpers

func printRequestLine(r model.LeaveRequest) {
	who := ""
	if r.User != nil {
		who = r.User.FullName() + ": "
	}
	fmt.Printf("  [%d] %s%s  %s to %s  %s (%s)\n",
		r.ID, who, r.RequestID, r.StartDate, r.EndDate, r.LeaveType.Name, r.Status)
}

// printRangeConflicts fetches the holiday calendar for the draft's years
// and prints a warning for each weekend or holiday inside the range.
func printRangeConflicts(draft services.Draft) error {
	start, err := time.Parse("2006-01-02", draft.StartDate)
	if err != nil {
		return err
	}
	end, err := time.Parse("2006-01-02", draft.EndDate)
	if err != nil {
		return err
	}

	holidays := []model.Holiday{}
	for year := start.Year(); year <= end.Year(); year++ {
		yearHolidays, err := app.holidayClient.ForYear(app.ctx, year)
		if err != nil {
			return err
		}
		closures, err := calendar.ExpandRecurringClosures(closureRules(app.cfg), year)
		if err != nil {
			return err
		}
		holidays = append(holidays, calendar.MergeHolidays(yearHolidays, closures)...)
	}

	conflicts, err := services.RangeConflicts(draft, holidays)
	if err != nil {
		return err
	}
	for _, c := range conflicts {
		label := "weekend"
		if c.IsHoliday {
			label = c.HolidayName
		}
		fmt.Printf("⚠ %s falls on a non-working day (%s)\n", c.Date.Format("2006-01-02"), label)
	}
	return nil
}

func closureRules(cfg *config.Config) []calendar.ClosureRule {
	rules := make([]calendar.ClosureRule, len(cfg.RecurringClosures))
	for i, c := range cfg.RecurringClosures {
		rules[i] = calendar.ClosureRule{Name: c.Name, RRule: c.RRule, Description: c.Description}
	}
	return rules
}

// openFiles stats and opens the selected attachment paths, capturing size
// and a content type guessed from the extension.
func openFiles(paths []string) ([]services.AttachmentFile, error) {
	files := make([]services.AttachmentFile, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read attachment %s: %w", path, err)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open attachment %s: %w", path, err)
		}

		files = append(files, services.AttachmentFile{
			Name:        filepath.Base(path),
			Size:        info.Size(),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Content:     f,
		})
	}
	return files, nil
}
