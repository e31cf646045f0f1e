package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fcb2b-project/fcb2b-go/pkg/client"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
)

var (
	invokeSKU    string
	invokeParams []string
	invokeDryRun bool
)

var invokeCmd = &cobra.Command{
	Use:   "invoke SERVICE",
	Short: "sign and call a service from the directory",
	Long: `Invoke looks the named service up in the service directory, builds the
request parameters, signs the URL with the configured secret, and calls the
service. The response body is printed whether or not the call succeeded.`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoke,
}

func init() {
	invokeCmd.Flags().StringVar(&invokeSKU, "sku", "", "SupplierItemSKU parameter value")
	invokeCmd.Flags().StringArrayVar(&invokeParams, "param", nil, "additional query parameter (key=value, repeatable)")
	invokeCmd.Flags().BoolVar(&invokeDryRun, "dry-run", false, "print the signed URL without calling the service")

	rootCmd.AddCommand(invokeCmd)
}

func runInvoke(cmd *cobra.Command, args []string) error {
	params, err := parseParamFlags(invokeParams)
	if err != nil {
		return err
	}
	if invokeSKU != "" {
		params[protocol.ParamSupplierItemSKU] = invokeSKU
	}

	c := client.New(appConfig.ToClientConfig())

	cat, err := c.Services(cmd.Context())
	if err != nil {
		return err
	}

	service := cat.Profile(args[0])
	if service == nil {
		return fmt.Errorf("service %q not found in the directory", args[0])
	}
	if !service.Callable() {
		return fmt.Errorf("service %q does not specify an HTTPS URL", service.Name)
	}

	if invokeDryRun {
		signed, err := c.Sign(cmd.Context(), service.EndpointURL, params)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, signed.StringToSign)
		fmt.Fprintln(out)
		fmt.Fprintln(out, signed.URL)
		return nil
	}

	resp, err := c.Invoke(cmd.Context(), service, params)
	if err != nil && resp == nil {
		return err
	}

	printResponse(cmd.OutOrStdout(), resp)
	if !resp.OK() {
		return fmt.Errorf("service returned HTTP %d", resp.StatusCode)
	}
	return nil
}
