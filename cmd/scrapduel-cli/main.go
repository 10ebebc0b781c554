package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	scrapnet "github.com/eternaldensity/scrapduel/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "serve":
		runServe(os.Args[2:])
	case "fight":
		runFight(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  scrapduel serve [--addr ADDR] [--loadouts FILE]")
	fmt.Println("  scrapduel fight [--addr ADDR] [--loadout NAME] [--enemy NAME] [--tier N]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve   Start a combat server")
	fmt.Println("  fight   Connect to a combat server and fight in the terminal")
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":9000", "address to listen on")
	loadouts := fs.String("loadouts", "loadouts.yaml", "path to loadouts file")
	fs.Parse(args)

	logger := logrus.New()
	srv := scrapnet.NewServer(*loadouts, logger)
	if err := srv.ListenAndServe(context.Background(), *addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFight(args []string) {
	fs := flag.NewFlagSet("fight", flag.ExitOnError)
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	loadout := fs.String("loadout", "Wanderer", "your loadout name")
	enemy := fs.String("enemy", "", "enemy loadout name (server default when empty)")
	tier := fs.Int("tier", 0, "enemy difficulty tier")
	fs.Parse(args)

	url := fmt.Sprintf("ws://%s/ws", *addr)
	if err := scrapnet.Connect(context.Background(), url, *loadout, *enemy, *tier); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
