package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the version, commit hash, and build time of the website binary",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	info := version.Get()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "AyurSutra website\n")
	fmt.Fprintf(out, "  Version:    %s\n", info.Version)
	fmt.Fprintf(out, "  Commit:     %s\n", info.GitCommit)
	fmt.Fprintf(out, "  Built:      %s\n", info.BuildTime)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
