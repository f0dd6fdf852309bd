// cmd/vpcr/main.go
package main

import (
	"vpcr/internal/app"
	"vpcr/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
