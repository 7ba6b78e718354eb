// Command pwmake generates a random password carrying the requested number
// of entropy bits, mirroring the pwmake(1) utility that ships with
// libpwquality.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/abadger/go-pwquality/pkg/pwquality"
)

func main() {
	log.SetFlags(0)
	config := flag.String("config", "", "alternative configuration file (default: the system pwquality.conf)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-config file] [entropy-bits]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	bits := pwquality.MinEntropyBits
	if flag.NArg() > 0 {
		n, err := strconv.Atoi(flag.Arg(0))
		if err != nil {
			log.Fatalf("entropy bits: %v", err)
		}
		bits = n
	}

	settings, err := pwquality.New()
	if err != nil {
		if errors.Is(err, pwquality.ErrNotBuilt) {
			log.Fatalf("libpwquality unavailable: %v", err)
		}
		log.Fatalf("initializing settings: %v", err)
	}
	defer func() {
		_ = settings.Close()
	}()

	if err := settings.ReadConfig(*config); err != nil {
		log.Fatalf("reading configuration: %v", err)
	}

	generated, err := settings.Generate(bits)
	if err != nil {
		var qerr *pwquality.Error
		if errors.As(err, &qerr) {
			log.Fatalf("generation failed: %s (code %d)", qerr.Message, qerr.Code)
		}
		log.Fatalf("generation failed: %v", err)
	}

	fmt.Println(generated)
}
