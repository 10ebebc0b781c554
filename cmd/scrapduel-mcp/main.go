package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	scrapmcp "github.com/eternaldensity/scrapduel/internal/mcp"
)

func main() {
	loadouts := flag.String("loadouts", "loadouts.yaml", "path to loadouts YAML file")
	flag.Parse()

	scrapmcp.SetLoadoutsFile(*loadouts)

	s := server.NewMCPServer("scrapduel", "1.0.0")
	scrapmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
