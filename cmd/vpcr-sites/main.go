// cmd/vpcr-sites/main.go
package main

import (
	"vpcr/internal/appshell"
	"vpcr/internal/sitesapp"
)

func main() {
	appshell.Main(sitesapp.RunContext)
}
