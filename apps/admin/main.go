package main

import (
	"log"
	"os"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	accounts, err := auth.DefaultAccounts()
	errAndDie(err)

	// start CLI
	cli := commandLine{
		conf:    conf,
		authSvc: auth.NewService(accounts, conf),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
