package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	fcb2b "github.com/fcb2b-project/fcb2b-go"
	"github.com/fcb2b-project/fcb2b-go/internal"
)

var outputFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show the version",
	Run:   printVersion,
}

func init() {
	versionCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "format to show version information (available=[text, json])")

	rootCmd.AddCommand(versionCmd)
}

func printVersion(_ *cobra.Command, _ []string) {
	versionInfo := fcb2b.GetVersionInfo()
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	switch outputFormat {
	case "text":
		fmt.Println("Application:    ", internal.ApplicationName)
		fmt.Println("Version:        ", versionInfo.Version)
		fmt.Println("SchemaVersion:  ", versionInfo.SchemaVersion)
		fmt.Println("UserAgent:      ", versionInfo.UserAgent)
		fmt.Println("Platform:       ", platform)
		fmt.Println("GoVersion:      ", runtime.Version())
		fmt.Println("Compiler:       ", runtime.Compiler)
	case "json":

		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		err := enc.Encode(&struct {
			Application   string `json:"application"`
			Version       string `json:"version"`
			SchemaVersion string `json:"schemaVersion"`
			UserAgent     string `json:"userAgent"`
			GoVersion     string `json:"goVersion"`
			Compiler      string `json:"compiler"`
			Platform      string `json:"platform"`
		}{
			Application:   internal.ApplicationName,
			Version:       versionInfo.Version,
			SchemaVersion: versionInfo.SchemaVersion,
			UserAgent:     versionInfo.UserAgent,
			GoVersion:     runtime.Version(),
			Compiler:      runtime.Compiler,
			Platform:      platform,
		})
		if err != nil {
			fmt.Printf("failed to show version information: %+v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("unsupported output format: %s\n", outputFormat)
		os.Exit(1)
	}
}
