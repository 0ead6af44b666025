// Package console provides the shared debug/info logger used across the
// generator. Format strings may embed color tokens like $Bold{...},
// $Red{...}, $Cyan{...} which are expanded to ANSI escapes when writing to
// a terminal and stripped otherwise.
package console

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Logger is the process-wide console logger.
var Logger = &Console{Out: os.Stderr}

// Console writes formatted log lines to Out. DebugLevel 0 silences Debug.
type Console struct {
	Out        io.Writer
	DebugLevel int

	// NoColor strips color tokens instead of expanding them.
	NoColor bool
}

var colorCodes = map[string]string{
	"Bold":    "1",
	"Red":     "31",
	"Green":   "32",
	"Yellow":  "33",
	"Blue":    "34",
	"Magenta": "35",
	"Cyan":    "36",
}

var colorToken = regexp.MustCompile(`\$(Bold|Red|Green|Yellow|Blue|Magenta|Cyan)\{([^{}]*)\}`)

// expand rewrites color tokens until none remain, so nested tokens like
// $Bold{$Cyan{...}} resolve inside out.
func (c *Console) expand(s string) string {
	for colorToken.MatchString(s) {
		s = colorToken.ReplaceAllStringFunc(s, func(m string) string {
			parts := colorToken.FindStringSubmatch(m)
			if c.NoColor {
				return parts[2]
			}
			return "\x1b[" + colorCodes[parts[1]] + "m" + parts[2] + "\x1b[0m"
		})
	}
	return s
}

func (c *Console) write(format string, v ...interface{}) {
	if c.Out == nil {
		return
	}
	line := fmt.Sprintf(c.expand(format), v...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	fmt.Fprint(c.Out, line)
}

// Debug logs when DebugLevel is above zero.
func (c *Console) Debug(format string, v ...interface{}) {
	if c.DebugLevel <= 0 {
		return
	}
	c.write(format, v...)
}

// Info logs unconditionally.
func (c *Console) Info(format string, v ...interface{}) {
	c.write(format, v...)
}

// Error logs unconditionally.
func (c *Console) Error(format string, v ...interface{}) {
	c.write("$Red{error:} "+format, v...)
}
