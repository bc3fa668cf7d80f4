package derive

// Argon2idParams configures Argon2id key derivation.
type Argon2idParams struct {
	Time        uint32
	MemoryKiB   uint32
	Parallelism uint8
	KeyLen      uint32
}

// Scheme is a versioned derivation scheme: a public salt plus fixed Argon2id
// parameters. The salt is a domain constant shared by every user; uniqueness
// of derived keys comes entirely from the root phrase. Outputs under a given
// version tag are a permanent contract — any change to the salt, parameters,
// normalization, label construction, or encoding requires a new version.
type Scheme struct {
	Version    string
	Salt       []byte
	Production Argon2idParams
	Test       Argon2idParams
}

// SchemeV1 returns the V1 derivation scheme.
func SchemeV1() Scheme {
	return Scheme{
		Version: "V1",
		Salt:    []byte("family-password-root-v1"),
		Production: Argon2idParams{
			Time:        3,
			MemoryKiB:   256 * 1024,
			Parallelism: 1,
			KeyLen:      32,
		},
		// Fast parameters for testing only. Never the default; the CLI
		// requires explicit confirmation before using them.
		Test: Argon2idParams{
			Time:        1,
			MemoryKiB:   8 * 1024,
			Parallelism: 1,
			KeyLen:      32,
		},
	}
}
