// Command snippets publishes the asciidoc snippets generated by the handler
// tests to S3-compatible object storage.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
