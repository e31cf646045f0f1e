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

package display

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
)

var (
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
	attrPattern = regexp.MustCompile(`(\w+)\s*=\s*"([^"]*)"`)
)

// PrettyXML re-indents an XML document with two-space indentation.
// Whitespace-only text between elements is dropped so already-formatted
// input does not accumulate blank lines. If the document cannot be
// tokenized it is returned unchanged.
func PrettyXML(document string) string {
	var out bytes.Buffer
	decoder := xml.NewDecoder(strings.NewReader(document))
	encoder := xml.NewEncoder(&out)
	encoder.Indent("", "  ")

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return document
		}
		if text, ok := token.(xml.CharData); ok {
			if len(bytes.TrimSpace(text)) == 0 {
				continue
			}
		}
		if err := encoder.EncodeToken(token); err != nil {
			return document
		}
	}
	if err := encoder.Flush(); err != nil {
		return document
	}
	return out.String()
}

// ColorizeXML applies lightweight syntax highlighting to an XML document:
// tags cyan, attribute names yellow, attribute values green. The input is
// not parsed, so it works on any roughly tag-shaped text, including
// documents PrettyXML could not handle.
func ColorizeXML(document string) string {
	return tagPattern.ReplaceAllStringFunc(document, colorizeTag)
}

func colorizeTag(tag string) string {
	content := tag[1 : len(tag)-1]
	content = attrPattern.ReplaceAllString(content,
		color.Yellow.Sprint("$1")+"="+color.Green.Sprint(`"$2"`))
	return color.Cyan.Sprint("<" + content + ">")
}
