// Package pseudonym generates the anonymous handles shown to peers in place
// of real identities.
package pseudonym

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Handles look like "steady-heron-42": adjective, animal, two-digit tag. The
// tag keeps collisions rare without making handles feel like serial numbers;
// uniqueness is not guaranteed and nothing may depend on it.

var adjectives = []string{
	"amber", "bold", "brisk", "calm", "clear", "deft", "eager", "fleet",
	"gentle", "keen", "lively", "lucid", "mellow", "nimble", "patient",
	"quiet", "rapid", "sage", "steady", "sunny", "swift", "tidy", "vivid",
	"warm", "wry",
}

var animals = []string{
	"badger", "bison", "crane", "falcon", "fox", "heron", "ibex", "jay",
	"kestrel", "lark", "lynx", "marten", "merlin", "otter", "owl", "petrel",
	"plover", "raven", "seal", "stoat", "swift", "tern", "vole", "wren",
	"yak",
}

// Generator produces pseudonymous handles from fixed word lists.
type Generator struct{}

// NewGenerator creates a pseudonym generator.
func NewGenerator() *Generator { return &Generator{} }

// Generate returns a fresh adjective-animal-NN handle.
func (g *Generator) Generate() string {
	return fmt.Sprintf("%s-%s-%02d",
		adjectives[randIndex(len(adjectives))],
		animals[randIndex(len(animals))],
		randIndex(100),
	)
}

// randIndex returns a uniform index in [0,n) from crypto/rand. Handles are
// user-visible identifiers, so a predictable sequence is not acceptable.
func randIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failing means the platform's entropy source is broken;
		// there is nothing sensible to degrade to.
		panic(fmt.Sprintf("pseudonym: read random: %v", err))
	}
	return int(v.Int64())
}
