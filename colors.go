// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI escapes used for plain fmt output such as the banner.
var Green, Info, Warning, Error, Reset string

var detectedMode TerminalMode

type ColorScheme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
}

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func colorSchemeFor(mode TerminalMode) ColorScheme {
	if mode == TerminalModeLight {
		return ColorScheme{
			Primary: lipgloss.Color("4"),
			Accent:  lipgloss.Color("5"),
			Success: lipgloss.Color("2"),
			Warning: lipgloss.Color("3"),
			Error:   lipgloss.Color("1"),
			Muted:   lipgloss.Color("240"),
			Border:  lipgloss.Color("8"),
		}
	}
	return ColorScheme{
		Primary: lipgloss.Color("39"),
		Accent:  lipgloss.Color("205"),
		Success: lipgloss.Color("46"),
		Warning: lipgloss.Color("11"),
		Error:   lipgloss.Color("196"),
		Muted:   lipgloss.Color("245"),
		Border:  lipgloss.Color("240"),
	}
}

// InitializeColors detects the terminal mode and sets the ANSI globals.
// With color disabled every escape is empty.
func InitializeColors(enabled bool) {
	detectedMode = detectTerminalMode()
	if !enabled {
		Green, Info, Warning, Error, Reset = "", "", "", "", ""
		return
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}
