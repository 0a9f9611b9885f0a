package polylimit

import "net/http"

// Transport wraps an http.RoundTripper so that every request made through it
// is classified and admitted before it is sent. A nil base uses
// http.DefaultTransport.
func (l *Limiter) Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &transport{limiter: l, base: base}
}

// transport implements http.RoundTripper, holding requests until the limiter
// admits them and then forwarding to the underlying transport.
type transport struct {
	limiter *Limiter
	base    http.RoundTripper
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	api, endpoint := Classify(req.URL, req.Method)
	if err := t.limiter.Admit(req.Context(), api, endpoint); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
