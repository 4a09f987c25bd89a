// cmd/pfa/main.go
package main

import (
	"parsefasta/internal/app"
	"parsefasta/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
