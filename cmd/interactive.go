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
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fcb2b-project/fcb2b-go/pkg/client"
	"github.com/fcb2b-project/fcb2b-go/pkg/display"
	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
)

// itemServices take SupplierItemSKU as their primary item parameter.
var itemServices = map[string]bool{
	"InventoryInquiry": true,
	"RelatedItems":     true,
	"StockCheck":       true,
}

// runInteractive drives the catalog-browse, pick, sign, call loop.
func runInteractive(cmd *cobra.Command, _ []string) error {
	c := client.New(appConfig.ToClientConfig())
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Fetching fcB2B service profiles from:\n  %s\n", appConfig.ServicesURL)

	cat, err := c.Services(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch or parse service profiles: %w", err)
	}

	fmt.Fprintln(out, display.ColorizeXML(display.PrettyXML(string(cat.Raw))))

	if len(cat.Profiles) == 0 {
		return errors.New("no services found in the profiles document")
	}

	for {
		display.FprintProfiles(out, cat.Profiles)

		service := chooseService(in, out, cat.Profiles)
		if service == nil {
			fmt.Fprintln(out, "Exiting.")
			return nil
		}

		params := promptParams(in, out, c, service)
		callService(cmd.Context(), out, c, service, params)

		fmt.Fprint(out, "\nDo you want to test another service? (y/n): ")
		answer, _ := readLine(in)
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			continue
		}
		fmt.Fprintln(out, "Goodbye.")
		return nil
	}
}

// chooseService asks the user to pick a service by number. It returns nil
// when the user quits or input ends.
func chooseService(in *bufio.Scanner, out io.Writer, profiles []*protocol.ServiceProfile) *protocol.ServiceProfile {
	for {
		fmt.Fprint(out, "Enter the number of the service to test (or 'q' to quit): ")
		line, ok := readLine(in)
		if !ok {
			return nil
		}

		choice := strings.TrimSpace(line)
		switch strings.ToLower(choice) {
		case "q", "quit", "exit":
			return nil
		}

		idx, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number.")
			continue
		}
		if idx >= 1 && idx <= len(profiles) {
			return profiles[idx-1]
		}

		fmt.Fprintln(out, "Choice out of range. Try again.")
	}
}

// promptParams builds the query parameters for the chosen service. The
// generated identifier and timestamp are printed so a failed call can be
// correlated with the supplier's logs.
func promptParams(in *bufio.Scanner, out io.Writer, c *client.Client, service *protocol.ServiceProfile) map[string]string {
	params := c.BuildParams(nil)

	fmt.Fprintf(out, "\nTesting service: %s\n", service.Name)
	fmt.Fprintf(out, "Generated GlobalIdentifier: %s\n", params[protocol.ParamGlobalIdentifier])
	fmt.Fprintf(out, "Generated TimeStamp       : %s\n", params[protocol.ParamTimeStamp])

	if itemServices[service.Name] {
		fmt.Fprint(out, "Enter item number (SupplierItemSKU): ")
		sku, _ := readLine(in)
		params[protocol.ParamSupplierItemSKU] = strings.TrimSpace(sku)
		return params
	}

	fmt.Fprintln(out, "No specific parameters implemented for this service yet.")
	fmt.Fprint(out, "Enter item number (SupplierItemSKU) or leave blank: ")
	sku, _ := readLine(in)
	if sku = strings.TrimSpace(sku); sku != "" {
		params[protocol.ParamSupplierItemSKU] = sku
	}

	return params
}

// callService signs the request, shows the signed URL, calls the service,
// and prints the response.
func callService(ctx context.Context, out io.Writer, c *client.Client, service *protocol.ServiceProfile, params map[string]string) {
	if !service.Callable() {
		fmt.Fprintln(out, "This service does not specify an HTTPS URL. Cannot call it.")
		return
	}

	signed, err := c.Sign(ctx, service.EndpointURL, params)
	if err != nil {
		fmt.Fprintln(out, "Request failed:", err)
		return
	}

	fmt.Fprintln(out, "\n--- Request Details ---")
	fmt.Fprintln(out, "\nSigned URL:")
	fmt.Fprintln(out, signed.URL)

	resp, err := c.Get(ctx, signed.URL)
	if err != nil && resp == nil {
		fmt.Fprintln(out, "Request failed:", err)
		return
	}

	printResponse(out, resp)
}

func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return in.Text(), true
}
