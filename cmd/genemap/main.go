// cmd/genemap/main.go
package main

import (
	"bytes"
	"fmt"
	"os"

	"genemap/internal/app"
)

func main() {
	var out bytes.Buffer
	code := app.Run(os.Args[1:], &out, os.Stderr)

	if out.Len() > 0 {
		fmt.Print(out.String())
	}
	os.Exit(code)
}
