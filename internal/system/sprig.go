// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package system

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// GetFuncMap returns a template.FuncMap that includes all the sprig functions except for env and expandenv.
func GetFuncMap() template.FuncMap {
	funcMap := sprig.FuncMap()
	delete(funcMap, "env")
	delete(funcMap, "expandenv")
	return funcMap
}

// RenderTemplate parses the text as a template with the sprig functions and executes it for data
func RenderTemplate(w io.Writer, text string, data any) error {
	tmpl, err := template.New("output").Funcs(GetFuncMap()).Parse(text)
	if err != nil {
		return fmt.Errorf("error parsing template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("error rendering template: %w", err)
	}
	return nil
}
