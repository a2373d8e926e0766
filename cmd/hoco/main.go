// cmd/hoco/main.go
package main

import (
	"hoco/internal/app"
	"hoco/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
