package main

import (
	"github.com/awnumar/memguard"
	"github.com/jmcleod/vaultphrase/cmd/vaultphrase/cmd"
)

func main() {
	// Wipe enclave-held key material even on interrupt mid-derivation.
	memguard.CatchInterrupt()
	defer memguard.Purge()

	cmd.Execute()
}
