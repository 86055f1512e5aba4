// hrdash serves the employee dashboard API and web pages, and doubles as a
// command-line client for a running server.
//
// Usage:
//
//	# Start the server
//	hrdash serve --config hrdash.yaml
//
//	# Query a running server
//	hrdash employees list --department HR --sort hireDate --direction desc
//
//	# Add an employee
//	hrdash employees create --name "Ada Lovelace" --department Engineering \
//	    --position "Software Engineer" --hire-date 2024-03-01 --salary 120000
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
