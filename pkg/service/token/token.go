package token

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/interfaces"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

// tokenBytes is 256 bits of entropy, double the 128-bit floor required
// for a report credential
const tokenBytes = 32

// Source generates report tokens from the operating system CSPRNG.
// The hex encoding keeps tokens URL-safe.
type Source struct{}

var _ interfaces.TokenSource = &Source{}

func New() *Source {
	return &Source{}
}

func (s *Source) NewReportToken() (types.ReportToken, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", goerr.Wrap(err, "failed to read random bytes for report token")
	}
	return types.ReportToken(hex.EncodeToString(buf)), nil
}
