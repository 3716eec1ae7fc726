package transport

// Transport fetches the content stored at a resolved fixture location.
// Implementations must block until the body is fully available. A non-nil
// error means no response was obtained at all; protocol-level failures are
// reported through Response.StatusCode.
type Transport interface {
	Fetch(url string) (*Response, error)
}

// Func adapts an ordinary function to the Transport interface.
type Func func(url string) (*Response, error)

func (f Func) Fetch(url string) (*Response, error) {
	return f(url)
}

// For picks the transport matching a fixtures base path: HTTP for http and
// https URLs, the file system otherwise.
func For(basePath string, opts ...ClientOption) Transport {
	if isHTTPURL(basePath) {
		return NewClient(opts...)
	}
	return NewFiles()
}
