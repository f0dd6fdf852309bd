// cmd/vpcr-junction/main.go
package main

import (
	"vpcr/internal/appshell"
	"vpcr/internal/junctionapp"
)

func main() {
	appshell.Main(junctionapp.RunContext)
}
