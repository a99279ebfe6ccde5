// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"io"

	"charm.land/lipgloss/v2"
)

// Styles for terminal output. When color is disabled every style renders plain text.
type styles struct {
	enabled bool
	label   lipgloss.Style
	term    lipgloss.Style
	typ     lipgloss.Style
	status  lipgloss.Style
}

func newStyles(mode string, w io.Writer) styles {
	return styles{
		enabled: useColor(mode, w),
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		term:    lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		typ:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
