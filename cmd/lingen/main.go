// lingen generates Go types and their index codecs from a YAML schema.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
