// Copyright (C) 2026 FCB2B Project
//
// This file is part of fcb2b-go.
//
// fcb2b-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fcb2b-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fcb2b-go.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
	"github.com/fcb2b-project/fcb2b-go/pkg/verifier"
)

var verifyCmd = &cobra.Command{
	Use:   "verify URL",
	Short: "verify the signature of a signed service URL",
	Long: `Verify recomputes the signature of a signed URL with the configured secret
and reports whether it matches the Signature parameter carried by the URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	if appConfig.SecretKey == "" {
		return errors.NewConfigError("secret-key", "a shared secret is required for verification", nil)
	}

	v := verifier.NewDefaultURLVerifier()

	verification, err := v.VerifyURL(cmd.Context(), args[0], appConfig.SecretKey)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Signature valid.")

	keys := make([]string, 0, len(verification.Params))
	for key := range verification.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(out, "  %s = %s\n", key, verification.Params[key])
	}
	return nil
}
