// Command declarative works with declarative DAG documents from the shell:
// casting interval values, checking documents and printing their JSON Schema.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
