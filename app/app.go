// Package app wires the ppm command-line interface to its services.
package app

import (
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/ppm/internal/config"
	"github.com/ayoisaiah/ppm/internal/models"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func sessionCommand() *cli.Command {
	return &cli.Command{
		Name:  "session",
		Usage: "Start, stop and review focus sessions",
		Subcommands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start a focus session",
				Flags:  []cli.Flag{durationFlag, sessionProjectFlag},
				Action: runService(startSession),
			},
			{
				Name:   "end",
				Usage:  "End the active focus session now",
				Action: runService(endSession),
			},
			{
				Name:   "cancel",
				Usage:  "Discard the active focus session",
				Action: runService(cancelSession),
			},
			{
				Name:   "status",
				Usage:  "Print the status of the active focus session",
				Action: runService(sessionStatus),
			},
			{
				Name:   "list",
				Usage:  "List focus sessions, most recent first",
				Flags:  []cli.Flag{limitFlag, sinceFlag},
				Action: runService(listSessions),
			},
			{
				Name:   "stats",
				Usage:  "Summarise focus time for today, this week and all time",
				Action: runService(sessionStats),
			},
			{
				Name:   "watch",
				Usage:  "Show a live countdown for the active focus session",
				Flags:  []cli.Flag{disableNotificationFlag},
				Action: runService(watchSession),
			},
		},
	}
}

func taskCommand() *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Manage tasks",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a pending task",
				ArgsUsage: "<description>",
				Flags:     []cli.Flag{taskProjectFlag},
				Action:    runService(addTask),
			},
			{
				Name:   "list",
				Usage:  "List tasks, newest first",
				Flags:  []cli.Flag{taskStatusFlag, filterProjectFlag},
				Action: runService(listTasks),
			},
			{
				Name:      "done",
				Usage:     "Mark a pending task as done",
				ArgsUsage: "<id>",
				Action:    runService(completeTask),
			},
			{
				Name:      "cancel",
				Usage:     "Mark a pending task as canceled",
				ArgsUsage: "<id>",
				Action:    runService(cancelTask),
			},
		},
	}
}

func noteCommand() *cli.Command {
	return &cli.Command{
		Name:  "note",
		Usage: "Write and browse notes",
		Subcommands: []*cli.Command{
			{
				Name:   "new",
				Usage:  "Write a new note",
				Flags:  []cli.Flag{noteProjectFlag, messageFlag, editorFlag},
				Action: runService(createNote),
			},
			{
				Name:   "list",
				Usage:  "List notes, newest first",
				Flags:  []cli.Flag{limitFlag, filterProjectFlag},
				Action: runService(listNotes),
			},
			{
				Name:      "show",
				Usage:     "Print a note",
				ArgsUsage: "<id>",
				Action:    runService(showNote),
			},
			{
				Name:      "edit",
				Usage:     "Edit the body of a note",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{editorFlag},
				Action:    runService(editNote),
			},
			{
				Name:      "delete",
				Usage:     "Delete a note",
				ArgsUsage: "<id>",
				Action:    runService(deleteNote),
			},
		},
	}
}

func projectCommand() *cli.Command {
	return &cli.Command{
		Name:  "project",
		Usage: "Manage projects",
		Subcommands: []*cli.Command{
			{
				Name:      "new",
				Usage:     "Create a project",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{descriptionFlag},
				Action:    runService(createProject),
			},
			{
				Name:   "list",
				Usage:  "List projects",
				Flags:  []cli.Flag{projectStatusFlag, sortFlag},
				Action: runService(listProjects),
			},
			{
				Name:      "archive",
				Usage:     "Mark a project as inactive",
				ArgsUsage: "<name>",
				Action:    runService(setProjectStatus(models.ProjectInactive)),
			},
			{
				Name:      "activate",
				Usage:     "Mark a project as active",
				ArgsUsage: "<name>",
				Action:    runService(setProjectStatus(models.ProjectActive)),
			},
		},
	}
}

// Get retrieves the ppm app instance.
func Get() *cli.App {
	ppmApp := &cli.App{
		Name: "ppm",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		ppm is a personal productivity tracker for the command-line. It records
		focus sessions, tasks, notes and projects as plain local files.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			sessionCommand(),
			taskCommand(),
			noteCommand(),
			projectCommand(),
			{
				Name:   "config",
				Usage:  "Print the effective configuration",
				Action: configAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}

	return ppmApp
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting ppm")

	return nil
}
