package app

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/ppm/internal/apperr"
	"github.com/ayoisaiah/ppm/internal/config"
	"github.com/ayoisaiah/ppm/internal/editor"
	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/internal/timeutil"
	"github.com/ayoisaiah/ppm/service"
)

const (
	envNoColor    = "NO_COLOR"
	envPPMNoColor = "PPM_NO_COLOR"
)

var (
	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errInvalidChoice = &apperr.Error{
		Message: "invalid value '%s' for --%s (must be one of %s)",
	}
)

// builder turns a parsed command line into the service that handles it.
type builder func(ctx *cli.Context, d *deps) (service.Service, error)

// runService wraps a builder in an action that assembles dependencies, runs
// the service once and releases everything afterwards.
func runService(build builder) cli.ActionFunc {
	return func(ctx *cli.Context) (err error) {
		d, err := newDeps(ctx)
		if err != nil {
			return err
		}

		defer func() {
			err = errors.Join(err, d.close())
		}()

		svc, err := build(ctx, d)
		if err != nil {
			return err
		}

		return svc.Run()
	}
}

// firstArg returns the first positional argument or an error naming it.
func firstArg(ctx *cli.Context, name string) (string, error) {
	arg := strings.TrimSpace(ctx.Args().First())
	if arg == "" {
		return "", errMissingArg.Fmt(name)
	}

	return arg, nil
}

// choice validates that the value of a flag is one of the allowed values.
func choice(ctx *cli.Context, flag string, allowed ...string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(ctx.String(flag)))
	if !slices.Contains(allowed, v) {
		return "", errInvalidChoice.Fmt(v, flag, strings.Join(allowed, ", "))
	}

	return v, nil
}

func startSession(ctx *cli.Context, d *deps) (service.Service, error) {
	return &service.StartSession{
		Clock:    d.clock,
		Repo:     d.sessions,
		Out:      d.out,
		Duration: d.cfg.Session.DefaultDuration,
		Project:  strings.TrimSpace(ctx.String("project")),
	}, nil
}

func endSession(_ *cli.Context, d *deps) (service.Service, error) {
	return &service.EndSession{Clock: d.clock, Repo: d.sessions, Out: d.out}, nil
}

func cancelSession(_ *cli.Context, d *deps) (service.Service, error) {
	return &service.CancelSession{Clock: d.clock, Repo: d.sessions, Out: d.out}, nil
}

func sessionStatus(_ *cli.Context, d *deps) (service.Service, error) {
	return &service.SessionStatus{Clock: d.clock, Repo: d.sessions, Out: d.out}, nil
}

func listSessions(ctx *cli.Context, d *deps) (service.Service, error) {
	s := &service.ListSessions{
		Clock: d.clock,
		Repo:  d.sessions,
		Out:   d.out,
		Limit: ctx.Int("limit"),
	}

	if since := ctx.String("since"); since != "" {
		t, err := timeutil.FromStr(since, d.clock.Now())
		if err != nil {
			return nil, err
		}

		s.Since = t
	}

	return s, nil
}

func sessionStats(_ *cli.Context, d *deps) (service.Service, error) {
	return &service.SessionStats{Clock: d.clock, Repo: d.sessions, Out: d.out}, nil
}

func watchSession(_ *cli.Context, d *deps) (service.Service, error) {
	return &watchService{
		clock:  d.clock,
		repo:   d.sessions,
		notify: d.cfg.Notifications.Enabled,
	}, nil
}

func addTask(ctx *cli.Context, d *deps) (service.Service, error) {
	description := strings.Join(ctx.Args().Slice(), " ")
	if strings.TrimSpace(description) == "" {
		return nil, errMissingArg.Fmt("description")
	}

	return &service.AddTask{
		Clock:       d.clock,
		Tasks:       d.tasks,
		Out:         d.out,
		Project:     strings.TrimSpace(ctx.String("project")),
		Description: description,
	}, nil
}

func listTasks(ctx *cli.Context, d *deps) (service.Service, error) {
	status, err := choice(
		ctx,
		"status",
		string(service.TaskFilterAll),
		string(service.TaskFilterPending),
		string(service.TaskFilterDone),
		string(service.TaskFilterCanceled),
	)
	if err != nil {
		return nil, err
	}

	return &service.ListTasks{
		Tasks:   d.tasks,
		Out:     d.out,
		Filter:  service.TaskFilter(status),
		Project: strings.TrimSpace(ctx.String("project")),
	}, nil
}

func completeTask(ctx *cli.Context, d *deps) (service.Service, error) {
	id, err := firstArg(ctx, "task id")
	if err != nil {
		return nil, err
	}

	return &service.CompleteTask{Clock: d.clock, Tasks: d.tasks, Out: d.out, ID: id}, nil
}

func cancelTask(ctx *cli.Context, d *deps) (service.Service, error) {
	id, err := firstArg(ctx, "task id")
	if err != nil {
		return nil, err
	}

	return &service.CancelTask{Clock: d.clock, Tasks: d.tasks, Out: d.out, ID: id}, nil
}

func createNote(ctx *cli.Context, d *deps) (service.Service, error) {
	return &service.CreateNote{
		Clock:    d.clock,
		Notes:    d.notes,
		Sessions: d.sessions,
		Out:      d.out,
		Editor:   d.editor,
		Project:  strings.TrimSpace(ctx.String("project")),
		Content:  ctx.String("message"),
	}, nil
}

func listNotes(ctx *cli.Context, d *deps) (service.Service, error) {
	return &service.ListNotes{
		Notes:   d.notes,
		Out:     d.out,
		Limit:   ctx.Int("limit"),
		Project: strings.TrimSpace(ctx.String("project")),
	}, nil
}

func showNote(ctx *cli.Context, d *deps) (service.Service, error) {
	id, err := firstArg(ctx, "note id")
	if err != nil {
		return nil, err
	}

	return &service.ShowNote{Notes: d.notes, Out: d.out, ID: id}, nil
}

func editNote(ctx *cli.Context, d *deps) (service.Service, error) {
	id, err := firstArg(ctx, "note id")
	if err != nil {
		return nil, err
	}

	return &service.EditNote{Notes: d.notes, Out: d.out, Editor: d.editor, ID: id}, nil
}

func deleteNote(ctx *cli.Context, d *deps) (service.Service, error) {
	id, err := firstArg(ctx, "note id")
	if err != nil {
		return nil, err
	}

	return &service.DeleteNote{Notes: d.notes, Out: d.out, ID: id}, nil
}

func createProject(ctx *cli.Context, d *deps) (service.Service, error) {
	name, err := firstArg(ctx, "project name")
	if err != nil {
		return nil, err
	}

	return &service.CreateProject{
		Clock:       d.clock,
		Projects:    d.projects,
		Out:         d.out,
		Name:        name,
		Description: ctx.String("description"),
	}, nil
}

func listProjects(ctx *cli.Context, d *deps) (service.Service, error) {
	status, err := choice(
		ctx,
		"status",
		string(service.ProjectFilterAll),
		string(service.ProjectFilterActive),
		string(service.ProjectFilterInactive),
	)
	if err != nil {
		return nil, err
	}

	order, err := choice(ctx, "sort", "created", "name")
	if err != nil {
		return nil, err
	}

	return &service.ListProjects{
		Projects:   d.projects,
		Out:        d.out,
		Filter:     service.ProjectFilter(status),
		SortByName: order == "name",
	}, nil
}

func setProjectStatus(status models.ProjectStatus) builder {
	return func(ctx *cli.Context, d *deps) (service.Service, error) {
		name, err := firstArg(ctx, "project name")
		if err != nil {
			return nil, err
		}

		return &service.SetProjectStatus{
			Projects: d.projects,
			Out:      d.out,
			Name:     name,
			Status:   status,
		}, nil
	}
}

// configAction prints the effective configuration as YAML.
func configAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(config.Stdout, "# %s\n%s", cfg.PathToConfig, b)

	return err
}

// editConfigAction opens the config file in the user's editor.
func editConfigAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	return editor.System{Command: cfg.Editor}.Edit(cfg.PathToConfig)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if PPM_NO_COLOR is set
	if _, exists := os.LookupEnv(envPPMNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
