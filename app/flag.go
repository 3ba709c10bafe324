package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Focus session length, e.g. 45m or 1h30m. Bare numbers are minutes (default: 60)",
	}

	sessionProjectFlag = &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Project to attribute the session to",
	}

	limitFlag = &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Show at most this many entries",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only show sessions that started on or after this date (e.g. '2024-03-01', '3 days ago')",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears after a session is completed",
	}

	taskProjectFlag = &cli.StringFlag{
		Name:     "project",
		Aliases:  []string{"p"},
		Usage:    "Project the task belongs to",
		Required: true,
	}

	taskStatusFlag = &cli.StringFlag{
		Name:  "status",
		Usage: "Filter tasks by status: all, pending, done or canceled",
		Value: "all",
	}

	filterProjectFlag = &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Only show entries for this project",
	}

	noteProjectFlag = &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Project the note belongs to. Defaults to the project of the active session",
	}

	messageFlag = &cli.StringFlag{
		Name:    "message",
		Aliases: []string{"m"},
		Usage:   "Note text. The editor is opened when omitted",
	}

	editorFlag = &cli.StringFlag{
		Name:  "editor",
		Usage: "Editor command to use instead of $VISUAL or $EDITOR",
	}

	descriptionFlag = &cli.StringFlag{
		Name:    "description",
		Aliases: []string{"d"},
		Usage:   "Short description of the project",
	}

	projectStatusFlag = &cli.StringFlag{
		Name:  "status",
		Usage: "Filter projects by status: all, active or inactive",
		Value: "all",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort projects by 'created' (newest first) or 'name'",
		Value: "created",
	}
)
