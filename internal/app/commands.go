package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rbright/yabai"
	"github.com/rbright/yabai/internal/cli"
	"github.com/rbright/yabai/internal/config"
	"github.com/rbright/yabai/internal/doctor"
	"github.com/rbright/yabai/internal/version"
)

func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           binaryName,
		Short:         "Send commands and queries to the yabai window manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.HasParent() || cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return s.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	root.PersistentFlags().StringVar(&s.socketFlag, "socket", "", "Path to the yabai socket (default: /tmp/yabai_$USER.socket)")
	root.PersistentFlags().StringVarP(&s.configFlag, "config", "c", "", "Config file path (default: $XDG_CONFIG_HOME/yabaictl/config.toml)")

	root.AddCommand(newMsgCommand(s))
	for _, action := range cli.Actions() {
		root.AddCommand(newActionCommand(s, action))
	}
	root.AddCommand(newQueryCommand(s))
	root.AddCommand(newDoctorCommand(s))
	root.AddCommand(newVersionCommand())

	return root
}

func newMsgCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "msg -- <ARG>...",
		Short: "Send a raw message, exactly as it would follow `yabai -m`",
		Example: "  yabaictl msg -- space --focus recent\n" +
			"  yabaictl msg -- query --windows --space 2",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.deliver(cmd, strings.Join(args, " "))
		},
	}
}

func newActionCommand(s *session, action cli.Action) *cobra.Command {
	return &cobra.Command{
		Use:   action.Usage,
		Short: action.Short,
		Args:  cobra.ExactArgs(action.Args),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := action.Build(args)
			if err != nil {
				return usageError{err: err}
			}
			return s.deliver(cmd, command.String())
		},
	}
}

func newQueryCommand(s *session) *cobra.Command {
	var format string
	var focused bool

	cmd := &cobra.Command{
		Use:       "query <displays|spaces|windows>",
		Short:     "Query displays, spaces, or windows",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"displays", "spaces", "windows"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = s.loaded.Config.Output.Format
			}
			switch format {
			case config.FormatAuto, config.FormatJSON, config.FormatTable:
			default:
				return usageError{err: fmt.Errorf("--format must be one of: auto, json, table")}
			}

			out := cmd.OutOrStdout()
			format = cli.ResolveFormat(format, out)
			ctx := cmd.Context()
			client := s.client

			switch args[0] {
			case "displays":
				items, err := pick(focused, func() ([]yabai.DisplayInfo, error) { return client.QueryDisplays(ctx) }, func() (yabai.DisplayInfo, error) { return client.FocusedDisplay(ctx) })
				if err != nil {
					return err
				}
				return emit(out, format, focused, items, cli.RenderDisplays)
			case "spaces":
				items, err := pick(focused, func() ([]yabai.SpaceInfo, error) { return client.QuerySpaces(ctx) }, func() (yabai.SpaceInfo, error) { return client.FocusedSpace(ctx) })
				if err != nil {
					return err
				}
				return emit(out, format, focused, items, cli.RenderSpaces)
			default:
				items, err := pick(focused, func() ([]yabai.WindowInfo, error) { return client.QueryWindows(ctx) }, func() (yabai.WindowInfo, error) { return client.FocusedWindow(ctx) })
				if err != nil {
					return err
				}
				return emit(out, format, focused, items, cli.RenderWindows)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "", "Output format: auto, json, or table (default from config)")
	cmd.Flags().BoolVar(&focused, "focused", false, "Only the focused display, space, or window")
	return cmd
}

// pick runs the list query, or the focused query wrapped in a one-element list.
func pick[T any](focused bool, all func() ([]T, error), one func() (T, error)) ([]T, error) {
	if !focused {
		return all()
	}
	item, err := one()
	if err != nil {
		return nil, err
	}
	return []T{item}, nil
}

// emit prints items as a table or JSON; focused JSON output is a single object like the daemon's.
func emit[T any](out io.Writer, format string, focused bool, items []T, render func([]T) string) error {
	if format == config.FormatTable {
		_, err := fmt.Fprintln(out, render(items))
		return err
	}
	if focused && len(items) == 1 {
		return cli.WriteJSON(out, items[0])
	}
	return cli.WriteJSON(out, items)
}

func newDoctorCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check config, socket, and daemon health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := doctor.Run(cmd.Context(), s.loaded, s.client.SocketPath)
			fmt.Fprintln(cmd.OutOrStdout(), report.String())
			if !report.OK() {
				return errChecksFailed
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
}
