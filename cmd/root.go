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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fcb2b-project/fcb2b-go/internal"
)

var rootCmd = &cobra.Command{
	Use:   internal.ApplicationName,
	Short: "Interactive tester for fcB2B service catalogs",
	Long: `fcb2b fetches an fcB2B service directory, lists the services it
advertises, and lets you invoke one with a signed GET request.

Running without a subcommand starts the interactive tester: pick a service
by number, enter its parameters, and inspect the signed URL and the XML
response. The shared secret comes from the config file, the FCB2B_SECRET_KEY
environment variable, or a .env file in the working directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&persistentOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&persistentOpts.Verbosity, "verbose", "v", "increase verbosity (-v = debug, -vv = trace)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress all non-error output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI color output")
	rootCmd.PersistentFlags().String("services-url", "", "service directory URL (overrides config)")

	for _, flag := range []string{"quiet", "no-color", "services-url"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Printf("unable to bind flag '%s': %+v", flag, err)
			os.Exit(1)
		}
	}
}
