package maturity

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/tq-lab/maturika/pkg/domain/interfaces"
	"github.com/tq-lab/maturika/pkg/domain/model"
)

// ErrModelUnavailable is returned when the model document cannot be
// read or does not conform to the model schema. It is an operational
// fault: nothing a submitter can correct.
var ErrModelUnavailable = goerr.New("maturity model unavailable")

// Loader reads the maturity model document once and caches the parsed
// model for the process lifetime. The model is versioned by redeploy,
// never by runtime update, so the cache is never invalidated.
type Loader struct {
	path   string
	readFn func(path string) ([]byte, error)

	once  sync.Once
	model *model.MaturityModel
	err   error
}

var _ interfaces.ModelLoader = &Loader{}

type Option func(*Loader)

// New creates a Loader for the model document at path. Supported
// formats are JSON (.json) and TOML (.toml), chosen by extension.
func New(path string, opts ...Option) *Loader {
	loader := &Loader{
		path:   path,
		readFn: os.ReadFile,
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

// Load returns the cached model, reading and validating the backing
// document on first call only. Concurrent first calls share one read.
// A failed first read is cached too: the document will not appear
// mid-process, and retry storms would only mask the deployment fault.
func (l *Loader) Load(ctx context.Context) (*model.MaturityModel, error) {
	l.once.Do(func() {
		l.model, l.err = l.read()
	})
	return l.model, l.err
}

func (l *Loader) read() (*model.MaturityModel, error) {
	data, err := l.readFn(l.path)
	if err != nil {
		return nil, goerr.Wrap(ErrModelUnavailable, "failed to read model document",
			goerr.V("path", l.path))
	}

	var parsed model.MaturityModel
	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".json":
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, goerr.Wrap(ErrModelUnavailable, "failed to parse JSON model document",
				goerr.V("path", l.path), goerr.V("cause", err.Error()))
		}
	case ".toml":
		if err := toml.Unmarshal(data, &parsed); err != nil {
			return nil, goerr.Wrap(ErrModelUnavailable, "failed to parse TOML model document",
				goerr.V("path", l.path), goerr.V("cause", err.Error()))
		}
	default:
		return nil, goerr.Wrap(ErrModelUnavailable, "unsupported model document format",
			goerr.V("path", l.path))
	}

	if err := parsed.Validate(); err != nil {
		return nil, goerr.Wrap(ErrModelUnavailable, "model document failed schema validation",
			goerr.V("path", l.path), goerr.V("cause", err.Error()))
	}

	return &parsed, nil
}
