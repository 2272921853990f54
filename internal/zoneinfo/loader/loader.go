package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgzoneinfo "github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

// Loader implements pkgzoneinfo.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgzoneinfo.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgzoneinfo.LoaderOptions) pkgzoneinfo.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src pkgzoneinfo.Source) (pkgzoneinfo.Document, error) {
	if src == nil {
		return pkgzoneinfo.Document{}, errors.New("zoneinfo loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgzoneinfo.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgzoneinfo.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgzoneinfo.SourceKindURL:
		if !l.allowHTTP {
			return pkgzoneinfo.Document{}, errors.New("zoneinfo loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("zoneinfo loader: unsupported source kind")
	}
	if err != nil {
		return pkgzoneinfo.Document{}, err
	}

	return pkgzoneinfo.NewDocument(src, data)
}
