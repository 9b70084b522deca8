package main

import (
	"fmt"
	"os"

	"github.com/dmulholl/arguably"
)

const usage = `Usage: app [--debug] [--tag <tag>...] [files...]
       app serve [--port <port>] [--workers <n>]`

func main() {
	serve := arguably.New().
		RequiredOption("port", "p").
		Option("workers", "w").
		OnMatch(func(name string, result *arguably.Result) {
			fmt.Printf("matched %q with port %s\n", name, result.Value("port"))
		})

	schema := arguably.New().
		Flag("debug", "d").
		MultiOption("tag", "t").
		Variadic("files").
		Command("serve", serve)

	result, err := schema.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// The help/version presentation layer lives out here, not in the
	// parser: it reads the flags off the result and renders.
	if result.HelpRequested() {
		fmt.Println(usage)
		return
	}
	if result.VersionRequested() {
		fmt.Println("app v0.1.0")
		return
	}

	fmt.Println("debug:", result.Found("debug"))
	fmt.Println("tags:", result.Values("tag"))
	fmt.Println("files:", result.PosAll("files"))
	if result.HasCmd() {
		fmt.Println("command:", result.CmdName())
	}
}
