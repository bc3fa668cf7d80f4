package cmd

import (
	"fmt"
)

const banner = `
__     __               _  _    ____   _
\ \   / /  __ _  _   _ | || |_ |  _ \ | |__   _ __   __ _  ___   ___
 \ \ / /  / _` + "`" + ` || | | || || __|| |_) || '_ \ | '__| / _` + "`" + ` |/ __| / _ \
  \ V /  | (_| || |_| || || |_ |  __/ | | | || |   | (_| |\__ \|  __/
   \_/    \__,_| \__,_||_| \__||_|    |_| |_||_|    \__,_||___/ \___|

`

func printBanner() {
	fmt.Printf("\x1b[34m%s\x1b[0m", banner)
	fmt.Printf("\x1b[32m  Deterministic Passphrase Derivation - Version %s\x1b[0m\n\n", Version)
}
