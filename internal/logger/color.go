package logger

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/python-exec/python-exec/internal/env"
)

type (
	Color     func() PrintFunc
	PrintFunc func(io.Writer, string, ...any)
)

func Default() PrintFunc {
	return color.New(envColor("COLOR_RESET", color.Reset)...).FprintfFunc()
}

func Blue() PrintFunc {
	return color.New(envColor("COLOR_BLUE", color.FgBlue)...).FprintfFunc()
}

func Green() PrintFunc {
	return color.New(envColor("COLOR_GREEN", color.FgGreen)...).FprintfFunc()
}

func Cyan() PrintFunc {
	return color.New(envColor("COLOR_CYAN", color.FgCyan)...).FprintfFunc()
}

func Yellow() PrintFunc {
	return color.New(envColor("COLOR_YELLOW", color.FgYellow)...).FprintfFunc()
}

func Magenta() PrintFunc {
	return color.New(envColor("COLOR_MAGENTA", color.FgMagenta)...).FprintfFunc()
}

func Red() PrintFunc {
	return color.New(envColor("COLOR_RED", color.FgRed)...).FprintfFunc()
}

// envColor reads PYTHON_EXEC_<name>, either "r,g,b" for a 24-bit colour or a
// semicolon separated list of SGR codes. It is read on every call so that the
// settings file applies once it is loaded.
func envColor(name string, defaultColor color.Attribute) []color.Attribute {
	override := env.GetExecEnv(name)
	if override == "" {
		return []color.Attribute{defaultColor}
	}

	attributeStrs := strings.Split(override, ",")
	if len(attributeStrs) == 3 {
		attributeStrs = slices.Concat([]string{"38", "2"}, attributeStrs)
	} else {
		attributeStrs = strings.Split(override, ";")
	}

	attributes := make([]color.Attribute, len(attributeStrs))
	for i, attributeStr := range attributeStrs {
		attribute, err := strconv.Atoi(strings.TrimSpace(attributeStr))
		if err != nil {
			return []color.Attribute{defaultColor}
		}
		attributes[i] = color.Attribute(attribute)
	}

	return attributes
}
