// Package display renders catalog listings and XML responses for the
// terminal.
//
// The helpers here back the interactive tester: FprintProfiles prints the
// numbered service listing users pick from, PrettyXML re-indents a response
// body, and ColorizeXML highlights it for ANSI terminals.
//
// # XML Highlighting
//
// ColorizeXML is a deliberately lightweight highlighter. It recognizes
// anything of the form <...> as a tag and name="value" pairs inside it as
// attributes; it never parses the document, so malformed responses still
// colorize. Tags render cyan, attribute names yellow, attribute values
// green.
//
//	body := display.PrettyXML(string(resp.Body))
//	fmt.Println(display.ColorizeXML(body))
//
// Color output follows the gookit/color platform rules, so highlighting
// degrades to plain text where ANSI codes are unsupported.
package display
