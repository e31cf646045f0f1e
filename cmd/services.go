package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fcb2b-project/fcb2b-go/pkg/client"
	"github.com/fcb2b-project/fcb2b-go/pkg/display"
)

var servicesShowRaw bool

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "fetch and list the service directory",
	Args:  cobra.NoArgs,
	RunE:  runServices,
}

func init() {
	servicesCmd.Flags().BoolVar(&servicesShowRaw, "raw", false, "print the raw directory XML instead of the parsed listing")

	rootCmd.AddCommand(servicesCmd)
}

func runServices(cmd *cobra.Command, _ []string) error {
	c := client.New(appConfig.ToClientConfig())

	cat, err := c.Services(cmd.Context())
	if err != nil {
		return err
	}

	if servicesShowRaw {
		fmt.Fprintln(cmd.OutOrStdout(), string(cat.Raw))
		return nil
	}

	display.FprintProfiles(cmd.OutOrStdout(), cat.Profiles)
	return nil
}
