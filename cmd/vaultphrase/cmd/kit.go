package cmd

import (
	"fmt"
	"io"

	"github.com/jmcleod/vaultphrase/derive"
	"github.com/jmcleod/vaultphrase/wordlist"
)

// printRecoveryKit writes everything needed to re-derive the same
// passphrases later: scheme version, KDF parameters, salt, reserved labels,
// passphrase configuration and wordlist identity. No secret material.
func printRecoveryKit(w io.Writer, scheme derive.Scheme, params derive.Argon2idParams, wl *wordlist.Wordlist) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "================ RECOVERY KIT ================")
	fmt.Fprintln(w, "Store securely offline. Root phrase + this info")
	fmt.Fprintln(w, "recovers every passphrase.")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  VaultPhrase Version:  %s\n", Version)
	fmt.Fprintf(w, "  Derivation Scheme:    %s\n", scheme.Version)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Argon2id Parameters:")
	fmt.Fprintf(w, "    Memory Cost:        %d MiB\n", params.MemoryKiB/1024)
	fmt.Fprintf(w, "    Time Cost:          %d iterations\n", params.Time)
	fmt.Fprintf(w, "    Parallelism:        %d\n", params.Parallelism)
	fmt.Fprintf(w, "    Hash Length:        %d bytes\n", params.KeyLen)
	fmt.Fprintf(w, "    Root Salt:          %s\n", scheme.Salt)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Child Derivation Labels:")
	fmt.Fprintf(w, "    HOT Label:          %s\n", derive.LabelHot())
	fmt.Fprintf(w, "    COLD Label:         %s\n", derive.LabelCold())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Passphrase Configuration:")
	fmt.Fprintf(w, "    Words per Phrase:   %d\n", wordCount)
	fmt.Fprintf(w, "    Delimiter:          %q\n", delimiter)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Wordlist:")
	fmt.Fprintf(w, "    Name:               %s\n", wl.Name())
	fmt.Fprintf(w, "    Word Count:         %d\n", wl.Size())
	fmt.Fprintf(w, "    SHA-256:            %s\n", wl.Fingerprint())
	fmt.Fprintln(w, "==============================================")
}
