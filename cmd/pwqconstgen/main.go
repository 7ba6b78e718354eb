// Command pwqconstgen regenerates the typed constants file in pkg/pwquality
// from a pwquality.h header, the same way the upstream build derives its
// constant module from the header.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/abadger/go-pwquality/internal/headerscan"
)

// limits that are neither error codes nor setting identifiers, in the order
// they are emitted
var limitNames = []string{
	"PWQ_MAX_ENTROPY_BITS",
	"PWQ_MIN_ENTROPY_BITS",
	"PWQ_MAX_ERROR_MESSAGE_LEN",
}

func main() {
	log.SetFlags(0)
	header := flag.String("header", "/usr/include/pwquality.h", "path to pwquality.h")
	out := flag.String("out", "constants.go", "output file")
	flag.Parse()

	consts, err := headerscan.ScanFile(*header, "PWQ_")
	if err != nil {
		log.Fatalf("scanning header: %v", err)
	}

	src, err := render(consts)
	if err != nil {
		log.Fatalf("rendering constants: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	fmt.Printf("wrote %s (%d constants)\n", *out, len(consts))
}

type entry struct {
	name  string
	value int
}

func render(consts map[string]int) ([]byte, error) {
	var codes, settings []entry
	for name, value := range consts {
		switch {
		case strings.HasPrefix(name, "PWQ_ERROR_"):
			codes = append(codes, entry{"Code" + camel(strings.TrimPrefix(name, "PWQ_ERROR_")), value})
		case strings.HasPrefix(name, "PWQ_SETTING_"):
			settings = append(settings, entry{"Setting" + camel(strings.TrimPrefix(name, "PWQ_SETTING_")), value})
		}
	}
	// success first, then the negative taxonomy in header order
	sort.Slice(codes, func(i, j int) bool { return codes[i].value > codes[j].value })
	sort.Slice(settings, func(i, j int) bool { return settings[i].value < settings[j].value })

	for _, name := range limitNames {
		if _, ok := consts[name]; !ok {
			return nil, fmt.Errorf("header is missing %s", name)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by pwqconstgen from pwquality.h; DO NOT EDIT.\n\n")
	buf.WriteString("//go:generate go run github.com/abadger/go-pwquality/cmd/pwqconstgen -header ../../internal/headerscan/testdata/pwquality.h -out constants.go\n\n")
	buf.WriteString("package pwquality\n\n")

	buf.WriteString("// ErrorCode is a libpwquality return code. Negative values form the error\n")
	buf.WriteString("// taxonomy; Check additionally returns non-negative values as quality scores.\n")
	buf.WriteString("type ErrorCode int\n\nconst (\n")
	for _, e := range codes {
		fmt.Fprintf(&buf, "\t%s ErrorCode = %d\n", e.name, e.value)
	}
	buf.WriteString(")\n\n")

	buf.WriteString("// Setting identifies a tunable libpwquality knob for the typed value\n")
	buf.WriteString("// accessors.\n")
	buf.WriteString("type Setting int\n\nconst (\n")
	for _, e := range settings {
		fmt.Fprintf(&buf, "\t%s Setting = %d\n", e.name, e.value)
	}
	buf.WriteString(")\n\nconst (\n")
	for _, name := range limitNames {
		fmt.Fprintf(&buf, "\t%s = %d\n", camel(strings.TrimPrefix(name, "PWQ_")), consts[name])
	}
	buf.WriteString(")\n")

	return format.Source(buf.Bytes())
}

// camel converts an UPPER_SNAKE header suffix to the Go constant spelling,
// keeping known acronyms uppercase.
func camel(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" || part == "RNG" {
			continue
		}
		parts[i] = part[:1] + strings.ToLower(part[1:])
	}
	return strings.Join(parts, "")
}
