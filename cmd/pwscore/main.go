// Command pwscore reads a password on standard input and prints its quality
// score, mirroring the pwscore(1) utility that ships with libpwquality.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/abadger/go-pwquality/pkg/pwquality"
)

func main() {
	log.SetFlags(0)
	user := flag.String("user", "", "user name for the user and passwd-entry checks")
	config := flag.String("config", "", "alternative configuration file (default: the system pwquality.conf)")
	flag.Parse()

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

	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			log.Fatalf("reading password: %v", err)
		}
		log.Fatal("no password on standard input")
	}

	var opts []pwquality.CheckOption
	if *user != "" {
		opts = append(opts, pwquality.WithUser(*user))
	}

	score, err := settings.Check(sc.Text(), opts...)
	if err != nil {
		var qerr *pwquality.Error
		if errors.As(err, &qerr) {
			log.Fatalf("password check failed: %s (code %d)", qerr.Message, qerr.Code)
		}
		log.Fatalf("password check failed: %v", err)
	}

	fmt.Println(score)
}
