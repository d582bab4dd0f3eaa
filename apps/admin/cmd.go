package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf    *core.Config
	authSvc *auth.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  gentoken -email EMAIL - generate an API token for an account")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	genTokenCmd := flag.NewFlagSet("gentoken", flag.ExitOnError)
	genTokenEmail := genTokenCmd.String("email", "", "The account's email. The password will be prompted next.")

	switch args[1] {
	case "gentoken":
		if err := genTokenCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *genTokenEmail == "" {
			genTokenCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			genTokenCmd.Usage()
			return errHelp
		}
		return cli.genToken(*genTokenEmail, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}
