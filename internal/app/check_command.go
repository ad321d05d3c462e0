package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-bot-launcher/internal/profile"
)

// CheckCommand is the envcheck command line.
type CheckCommand struct {
	root *cobra.Command
	code int
}

// NewCheckCommand builds the envcheck command. The optional positional
// argument names a mode whose overlay is applied before validation.
func NewCheckCommand(build BuildInfo, environ []string) *CheckCommand {
	c := &CheckCommand{}
	c.root = &cobra.Command{
		Use:   "envcheck [mode]",
		Short: "Validate the bot configuration without launching anything",
		Long: fmt.Sprintf("envcheck reads the environment (and the optional .env file) and reports\n"+
			"every missing or malformed value. Known modes: %s.", strings.Join(profile.Modes(), ", ")),
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     profile.Modes(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var mode string
			if len(args) == 1 {
				mode = args[0]
			}
			c.code = Check(mode, environ, cmd.OutOrStdout())
			return nil
		},
	}

	c.root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			build.Print(cmd.OutOrStdout())
		},
	})

	return c
}

// SetArgs overrides os.Args[1:].
func (c *CheckCommand) SetArgs(args []string) {
	c.root.SetArgs(args)
}

// Command exposes the underlying cobra command, mainly for output redirection.
func (c *CheckCommand) Command() *cobra.Command {
	return c.root
}

// Execute runs the command and returns the process exit code. Usage errors
// exit with 2.
func (c *CheckCommand) Execute() int {
	if err := c.root.Execute(); err != nil {
		fmt.Fprintln(c.root.ErrOrStderr(), "envcheck:", err)
		return 2
	}
	return c.code
}
