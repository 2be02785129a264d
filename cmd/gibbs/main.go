// cmd/gibbs/main.go
package main

import (
	"gibbs/internal/app"
	"gibbs/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
