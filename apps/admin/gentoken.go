package main

import (
	"fmt"

	echoapi "github.com/trezcool/bweni/apps/api/echo"
)

func (cli *commandLine) genToken(email, pwd string) error {
	// delay-free credential check; the login latency only applies to the portal
	p, err := cli.authSvc.Authenticate(email, pwd)
	if err != nil {
		return err
	}

	token, err := echoapi.GenerateToken(cli.conf, echoapi.GetPrincipalClaims(cli.conf, p))
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
