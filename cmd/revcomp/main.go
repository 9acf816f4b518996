// cmd/revcomp/main.go
package main

import (
	"revcomp/internal/appshell"
	"revcomp/internal/cli"
)

func main() {
	appshell.Main(cli.Run)
}
