// Package headerscan extracts prefixed #define constants from a C header.
//
// libpwquality publishes its error codes, setting identifiers and limits as
// preprocessor defines in pwquality.h. The scanner pulls them out without
// running a C preprocessor: comments, conditional-compilation directives and
// function-like or valueless macros are skipped.
package headerscan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Scan reads a C header and returns every `#define <prefix>NAME <integer>`
// line as a name to value mapping. It fails when the input yields no
// matching defines, so a wrong path or a non-header file is caught loudly.
func Scan(r io.Reader, prefix string) (map[string]int, error) {
	consts := make(map[string]int)
	inComment := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if inComment {
			if strings.Contains(line, "*/") {
				inComment = false
			}
			continue
		}
		if strings.HasPrefix(line, "/*") {
			if !strings.Contains(line, "*/") {
				inComment = true
			}
			continue
		}
		if strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "#if") || strings.HasPrefix(line, "#endif") ||
			strings.HasPrefix(line, "#else") || strings.HasPrefix(line, "#include") {
			continue
		}
		if !strings.HasPrefix(line, "#define "+prefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			// valueless guard macro
			continue
		}
		name := fields[1]
		if strings.Contains(name, "(") {
			// function-like macro
			continue
		}
		value, err := strconv.Atoi(fields[2])
		if err != nil {
			// non-integer define, outside the constant taxonomy
			continue
		}
		consts[name] = value
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(consts) == 0 {
		return nil, fmt.Errorf("headerscan: no %s* defines found", prefix)
	}
	return consts, nil
}

// ScanFile is Scan over a header file on disk.
func ScanFile(path, prefix string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	consts, err := Scan(f, prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return consts, nil
}
