// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/Deon62/MSP-ictSupport/cmd/ictsupport/cli"
	"github.com/Deon62/MSP-ictSupport/lib/api"
)

// TicketCommand returns the "ticket" command group for scripting the
// helpdesk without the TUI.
func TicketCommand() *cli.Command {
	return &cli.Command{
		Name:    "ticket",
		Summary: "Manage tickets from the command line",
		Description: `Create, list, and manage support tickets non-interactively.

Listing and creating use the anonymous portal session. Status changes,
assignment, and deletion operate on the full queue and require an
admin login.`,
		Subcommands: []*cli.Command{
			ticketListCommand(),
			ticketShowCommand(),
			ticketCreateCommand(),
			ticketStatusCommand(),
			ticketAssignCommand(),
			ticketDeleteCommand(),
			ticketRateCommand(),
		},
	}
}

type ticketListParams struct {
	All      bool   `flag:"all"      desc:"list the full queue (requires admin login)" default:"false"`
	Status   string `flag:"status"   desc:"filter by status (pending, in_progress, resolved, closed)"`
	Building string `flag:"building" desc:"filter by building name"`
	Priority string `flag:"priority" desc:"filter by priority (low, medium, high, urgent)"`
	Search   string `flag:"search"   desc:"server-side text search"`
}

func ticketListCommand() *cli.Command {
	var params ticketListParams

	return &cli.Command{
		Name:    "list",
		Summary: "List tickets",
		Usage:   "ictsupport ticket list [flags]",
		Examples: []cli.Example{
			{
				Description: "List your tickets",
				Command:     "ictsupport ticket list",
			},
			{
				Description: "List every pending urgent ticket (admin)",
				Command:     "ictsupport ticket list --all --status pending --priority urgent",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.Status != "" && !api.ValidStatus(params.Status) {
				return cli.Validation("unknown status %q", params.Status)
			}
			if params.Priority != "" && !api.ValidPriority(params.Priority) {
				return cli.Validation("unknown priority %q", params.Priority)
			}

			filter := api.TicketFilter{
				Status:   params.Status,
				Building: params.Building,
				Priority: params.Priority,
				Search:   params.Search,
			}

			var tickets []api.Ticket
			if params.All {
				client, _, err := adminClient(logger)
				if err != nil {
					return err
				}
				tickets, err = client.AdminTickets(ctx, filter)
				if err != nil {
					return ticketError("list tickets", err)
				}
			} else {
				client, _, err := publicClient(logger)
				if err != nil {
					return err
				}
				tickets, err = client.Tickets(ctx, filter)
				if err != nil {
					return ticketError("list tickets", err)
				}
			}

			if len(tickets) == 0 {
				fmt.Println("No tickets.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tSTATUS\tPRIORITY\tBUILDING\tFLOOR\tASSIGNEE\tDESCRIPTION")
			for _, ticket := range tickets {
				building := ticket.BuildingName
				if building == "" {
					building = ticket.Building
				}
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					ticket.ID, ticket.Status, ticket.Priority, building,
					ticket.Floor, ticket.AssignedTo, ticket.Description)
			}
			return writer.Flush()
		},
	}
}

func ticketShowCommand() *cli.Command {
	return &cli.Command{
		Name:    "show",
		Summary: "Show one ticket in full",
		Usage:   "ictsupport ticket show <id>",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("usage: ictsupport ticket show <id>")
			}
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}

			client, _, err := publicClient(logger)
			if err != nil {
				return err
			}
			ticket, err := client.Ticket(ctx, id)
			if err != nil {
				return ticketError("show ticket", err)
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "ID\t%d\n", ticket.ID)
			fmt.Fprintf(writer, "Status\t%s\n", ticket.Status)
			fmt.Fprintf(writer, "Priority\t%s\n", ticket.Priority)
			fmt.Fprintf(writer, "Building\t%s\n", ticket.Building)
			fmt.Fprintf(writer, "Floor\t%s\n", ticket.Floor)
			fmt.Fprintf(writer, "Department\t%s\n", ticket.Department)
			fmt.Fprintf(writer, "Issue type\t%s\n", ticket.IssueType)
			fmt.Fprintf(writer, "Description\t%s\n", ticket.Description)
			if ticket.ContactPerson != "" {
				fmt.Fprintf(writer, "Contact\t%s\n", ticket.ContactPerson)
			}
			if ticket.PhoneNumber != "" {
				fmt.Fprintf(writer, "Phone\t%s\n", ticket.PhoneNumber)
			}
			if ticket.AssignedTo != "" {
				fmt.Fprintf(writer, "Assigned to\t%s\n", ticket.AssignedTo)
			}
			if ticket.Notes != "" {
				fmt.Fprintf(writer, "Notes\t%s\n", ticket.Notes)
			}
			fmt.Fprintf(writer, "Created\t%s\n", ticket.CreatedAt)
			if ticket.ResolvedAt != "" {
				fmt.Fprintf(writer, "Resolved\t%s\n", ticket.ResolvedAt)
			}
			return writer.Flush()
		},
	}
}

type ticketCreateParams struct {
	Building    string `flag:"building"    desc:"building name (required)"`
	Floor       string `flag:"floor"       desc:"floor label (\"Ground Floor\", \"2\")" default:"1"`
	Department  string `flag:"department"  desc:"department name (required)"`
	IssueType   string `flag:"issue-type"  desc:"issue category (required)"`
	Description string `flag:"description" desc:"what is wrong (required)"`
	Contact     string `flag:"contact"     desc:"contact person"`
	Phone       string `flag:"phone"       desc:"phone number or extension"`
	Priority    string `flag:"priority"    desc:"low, medium, high, or urgent" default:"medium"`
}

func ticketCreateCommand() *cli.Command {
	var params ticketCreateParams

	return &cli.Command{
		Name:    "create",
		Summary: "File a new ticket",
		Usage:   "ictsupport ticket create [flags]",
		Examples: []cli.Example{
			{
				Description: "File a printer ticket",
				Command:     `ictsupport ticket create --building "Main Library" --floor 2 --department Circulation --issue-type Printer --description "toner streaks on every page"`,
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			client, _, err := publicClient(logger)
			if err != nil {
				return err
			}

			ticket, err := client.CreateTicket(ctx, api.CreateTicketRequest{
				Building:      params.Building,
				Floor:         params.Floor,
				Department:    params.Department,
				IssueType:     params.IssueType,
				Description:   params.Description,
				ContactPerson: params.Contact,
				PhoneNumber:   params.Phone,
				Priority:      params.Priority,
			})
			if err != nil {
				if api.IsValidation(err) {
					return cli.Validation("%v", err)
				}
				return ticketError("create ticket", err)
			}

			if ticket.Notification != "" {
				fmt.Println(ticket.Notification)
			} else {
				fmt.Printf("Ticket #%d created.\n", ticket.ID)
			}
			return nil
		},
	}
}

func ticketStatusCommand() *cli.Command {
	return &cli.Command{
		Name:    "status",
		Summary: "Change a ticket's status (admin)",
		Usage:   "ictsupport ticket status <id> <pending|in_progress|resolved|closed>",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 2 {
				return cli.Validation("usage: ictsupport ticket status <id> <status>")
			}
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}
			status := args[1]
			if !api.ValidStatus(status) {
				return cli.Validation("unknown status %q (want pending, in_progress, resolved, or closed)", status)
			}

			client, _, err := adminClient(logger)
			if err != nil {
				return err
			}
			ticket, err := client.UpdateTicketStatus(ctx, id, status)
			if err != nil {
				return ticketError("update status", err)
			}
			fmt.Printf("Ticket #%d is now %s.\n", ticket.ID, ticket.Status)
			return nil
		},
	}
}

func ticketAssignCommand() *cli.Command {
	return &cli.Command{
		Name:    "assign",
		Summary: "Assign a ticket to a technician (admin)",
		Usage:   "ictsupport ticket assign <id> <username>",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 2 {
				return cli.Validation("usage: ictsupport ticket assign <id> <username>")
			}
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}

			client, _, err := adminClient(logger)
			if err != nil {
				return err
			}
			ticket, err := client.AssignTicket(ctx, id, args[1])
			if err != nil {
				return ticketError("assign ticket", err)
			}
			fmt.Printf("Ticket #%d assigned to %s.\n", ticket.ID, ticket.AssignedTo)
			return nil
		},
	}
}

type ticketDeleteParams struct {
	Yes bool `flag:"yes" desc:"skip the confirmation prompt" default:"false"`
}

func ticketDeleteCommand() *cli.Command {
	var params ticketDeleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a ticket (admin)",
		Usage:   "ictsupport ticket delete <id> [--yes]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("usage: ictsupport ticket delete <id> [--yes]")
			}
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}

			if !params.Yes {
				fmt.Fprintf(os.Stderr, "Delete ticket #%d? [y/N] ", id)
				var answer string
				fmt.Fscanln(os.Stdin, &answer)
				if answer != "y" && answer != "Y" && answer != "yes" {
					fmt.Fprintln(os.Stderr, "Aborted.")
					return nil
				}
			}

			client, _, err := adminClient(logger)
			if err != nil {
				return err
			}
			if err := client.DeleteTicket(ctx, id); err != nil {
				return ticketError("delete ticket", err)
			}
			fmt.Printf("Ticket #%d deleted.\n", id)
			return nil
		},
	}
}

type ticketRateParams struct {
	Comment string `flag:"comment" desc:"optional feedback comment"`
}

func ticketRateCommand() *cli.Command {
	var params ticketRateParams

	return &cli.Command{
		Name:    "rate",
		Summary: "Rate a resolved ticket",
		Usage:   "ictsupport ticket rate <id> <1-5> [flags]",
		Examples: []cli.Example{
			{
				Description: "Rate ticket 12 five stars",
				Command:     `ictsupport ticket rate 12 5 --comment "fixed in an hour"`,
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 2 {
				return cli.Validation("usage: ictsupport ticket rate <id> <1-5>")
			}
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}
			rating, err := strconv.Atoi(args[1])
			if err != nil || rating < 1 || rating > 5 {
				return cli.Validation("rating must be a number from 1 to 5")
			}

			client, _, err := publicClient(logger)
			if err != nil {
				return err
			}
			err = client.RateTicket(ctx, id, api.RateTicketRequest{
				Rating:  rating,
				Comment: params.Comment,
			})
			if err != nil {
				return ticketError("rate ticket", err)
			}
			fmt.Println("Thank you for your feedback.")
			return nil
		},
	}
}

func parseTicketID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, cli.Validation("invalid ticket id %q", arg)
	}
	return id, nil
}

// ticketError maps API failures to tool error categories so exit
// handling and scripting stay predictable.
func ticketError(operation string, err error) error {
	switch {
	case api.IsNotFound(err):
		return cli.NotFound("%s: %v", operation, err)
	case api.IsUnauthorized(err):
		return cli.Forbidden("%s: admin login required (ictsupport login)", operation)
	case api.IsTimeout(err), api.IsNetwork(err):
		return cli.Transient("%s: %v", operation, err)
	default:
		return cli.Internal("%s: %w", operation, err)
	}
}
