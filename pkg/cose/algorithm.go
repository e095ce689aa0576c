package cose

import (
	gocose "github.com/veraison/go-cose"
)

// Hash algorithm identifiers from the IANA COSE Algorithms registry that
// go-cose does not export.
// Reference: RFC 9054.
const (
	algSHA256 int64 = -16
	algSHA384 int64 = -43
	algSHA512 int64 = -44
)

// algorithmNames resolves the algorithm identifiers that commonly show
// up in Sign1 protected headers and x5t thumbprints.
// Reference: RFC 8152 8 Signature Algorithms.
var algorithmNames = map[int64]string{
	int64(gocose.AlgorithmES256): "ES256",
	int64(gocose.AlgorithmES384): "ES384",
	int64(gocose.AlgorithmES512): "ES512",
	int64(gocose.AlgorithmPS256): "PS256",
	int64(gocose.AlgorithmPS384): "PS384",
	int64(gocose.AlgorithmPS512): "PS512",
	algSHA256:                    "SHA-256",
	algSHA384:                    "SHA-384",
	algSHA512:                    "SHA-512",
}

// AlgorithmName returns the registered name for a COSE algorithm
// identifier, and whether the identifier is known.
func AlgorithmName(alg int64) (string, bool) {
	name, ok := algorithmNames[alg]
	return name, ok
}
