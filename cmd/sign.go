package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fcb2b-project/fcb2b-go/pkg/client"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
)

var (
	signSKU          string
	signParams       []string
	signStringToSign bool
)

var signCmd = &cobra.Command{
	Use:   "sign URL",
	Short: "sign a service URL without calling it",
	Long: `Sign builds the canonical query for the given endpoint URL, computes the
HMAC-SHA256 signature with the configured secret, and prints the signed URL.
No network request is made.`,
	Args: cobra.ExactArgs(1),
	RunE: runSign,
}

func init() {
	signCmd.Flags().StringVar(&signSKU, "sku", "", "SupplierItemSKU parameter value")
	signCmd.Flags().StringArrayVar(&signParams, "param", nil, "additional query parameter (key=value, repeatable)")
	signCmd.Flags().BoolVar(&signStringToSign, "string-to-sign", false, "also print the canonical string-to-sign")

	rootCmd.AddCommand(signCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	params, err := parseParamFlags(signParams)
	if err != nil {
		return err
	}
	if signSKU != "" {
		params[protocol.ParamSupplierItemSKU] = signSKU
	}

	c := client.New(appConfig.ToClientConfig())

	signed, err := c.Sign(cmd.Context(), args[0], params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if signStringToSign {
		fmt.Fprintln(out, signed.StringToSign)
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, signed.URL)
	return nil
}
