// Command vanity searches for secp256k1 keys whose base58 public key
// starts with a given prefix and stores each match as a PEM file.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
