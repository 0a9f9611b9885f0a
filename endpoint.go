package polylimit

import (
	"net/http"
	"net/url"
	"strings"
)

// APIType is the Polymarket service a request targets, detected from the
// request host (or a path prefix on local/test hosts).
type APIType int

const (
	// APIClob is the CLOB trading API.
	APIClob APIType = iota
	// APIGamma is the Gamma metadata API.
	APIGamma
	// APIData is the Data API.
	APIData
	// APIBridge is the Bridge deposit API.
	APIBridge
	// APIUnknown is any unrecognized host.
	APIUnknown
)

func (a APIType) String() string {
	switch a {
	case APIClob:
		return "clob"
	case APIGamma:
		return "gamma"
	case APIData:
		return "data"
	case APIBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// generalCategory returns the API-general rate-limit category consulted after
// the endpoint-specific bucket. Unknown APIs have none.
func (a APIType) generalCategory() (Category, bool) {
	switch a {
	case APIClob:
		return CategoryClobGeneral, true
	case APIGamma:
		return CategoryGammaGeneral, true
	case APIData:
		return CategoryDataGeneral, true
	case APIBridge:
		return CategoryBridgeGeneral, true
	default:
		return 0, false
	}
}

// Endpoint is the specific operation within an API, detected from the request
// method and path.
type Endpoint int

const (
	// CLOB endpoints.
	EndpointClobBook Endpoint = iota
	EndpointClobPrice
	EndpointClobMidpoint
	EndpointClobPostOrder
	EndpointClobDeleteOrder
	EndpointClobSubmit
	EndpointClobUserPnl
	EndpointClobGeneral

	// Gamma endpoints.
	EndpointGammaEvents
	EndpointGammaMarkets
	EndpointGammaMarketsEvents
	EndpointGammaComments
	EndpointGammaTags
	EndpointGammaSearch
	EndpointGammaGeneral

	// Data endpoints.
	EndpointDataTrades
	EndpointDataPositions
	EndpointDataClosedPositions
	EndpointDataGeneral

	// Bridge endpoints.
	EndpointBridgeGeneral

	// EndpointUnknown is any request to an unrecognized API.
	EndpointUnknown
)

func (e Endpoint) String() string {
	switch e {
	case EndpointClobBook:
		return "clob-book"
	case EndpointClobPrice:
		return "clob-price"
	case EndpointClobMidpoint:
		return "clob-midpoint"
	case EndpointClobPostOrder:
		return "clob-post-order"
	case EndpointClobDeleteOrder:
		return "clob-delete-order"
	case EndpointClobSubmit:
		return "clob-submit"
	case EndpointClobUserPnl:
		return "clob-user-pnl"
	case EndpointClobGeneral:
		return "clob-general"
	case EndpointGammaEvents:
		return "gamma-events"
	case EndpointGammaMarkets:
		return "gamma-markets"
	case EndpointGammaMarketsEvents:
		return "gamma-markets-events"
	case EndpointGammaComments:
		return "gamma-comments"
	case EndpointGammaTags:
		return "gamma-tags"
	case EndpointGammaSearch:
		return "gamma-search"
	case EndpointGammaGeneral:
		return "gamma-general"
	case EndpointDataTrades:
		return "data-trades"
	case EndpointDataPositions:
		return "data-positions"
	case EndpointDataClosedPositions:
		return "data-closed-positions"
	case EndpointDataGeneral:
		return "data-general"
	case EndpointBridgeGeneral:
		return "bridge-general"
	default:
		return "unknown"
	}
}

// category returns the endpoint-specific rate-limit category. General and
// unknown endpoints have none; their limits are applied at the API tier.
func (e Endpoint) category() (Category, bool) {
	switch e {
	case EndpointClobBook:
		return CategoryClobBook, true
	case EndpointClobPrice:
		return CategoryClobPrice, true
	case EndpointClobMidpoint:
		return CategoryClobMidpoint, true
	case EndpointClobPostOrder:
		return CategoryClobPostOrder, true
	case EndpointClobDeleteOrder:
		return CategoryClobDeleteOrder, true
	case EndpointClobSubmit:
		return CategoryClobSubmit, true
	case EndpointClobUserPnl:
		return CategoryClobUserPnl, true
	case EndpointGammaEvents:
		return CategoryGammaEvents, true
	case EndpointGammaMarkets:
		return CategoryGammaMarkets, true
	case EndpointGammaMarketsEvents:
		return CategoryGammaMarketsEvents, true
	case EndpointGammaComments:
		return CategoryGammaComments, true
	case EndpointGammaTags:
		return CategoryGammaTags, true
	case EndpointGammaSearch:
		return CategoryGammaSearch, true
	case EndpointDataTrades:
		return CategoryDataTrades, true
	case EndpointDataPositions:
		return CategoryDataPositions, true
	case EndpointDataClosedPositions:
		return CategoryDataClosedPositions, true
	default:
		return 0, false
	}
}

// endpointRule maps a (method, path) predicate to an endpoint. Rules are
// evaluated top to bottom; the first match wins, so more specific rules must
// precede more general ones.
type endpointRule struct {
	match    func(method, path string) bool
	endpoint Endpoint
}

var clobRules = []endpointRule{
	{func(m, p string) bool {
		return m == http.MethodGet && strings.HasPrefix(p, "/book")
	}, EndpointClobBook},
	{func(m, p string) bool {
		return m == http.MethodGet && strings.HasPrefix(p, "/price") && !strings.HasPrefix(p, "/prices")
	}, EndpointClobPrice},
	{func(m, p string) bool {
		return m == http.MethodGet && strings.HasPrefix(p, "/midpoint")
	}, EndpointClobMidpoint},
	{func(m, p string) bool {
		return m == http.MethodPost && (p == "/order" || p == "/orders")
	}, EndpointClobPostOrder},
	{func(m, p string) bool {
		return m == http.MethodDelete && strings.HasPrefix(p, "/order")
	}, EndpointClobDeleteOrder},
	{func(m, p string) bool {
		return m == http.MethodPost && p == "/submit"
	}, EndpointClobSubmit},
	{func(m, p string) bool {
		return strings.Contains(p, "rewards") && strings.Contains(p, "user")
	}, EndpointClobUserPnl},
}

var gammaRules = []endpointRule{
	{func(m, p string) bool {
		return m == http.MethodGet && strings.HasPrefix(p, "/events")
	}, EndpointGammaEvents},
	// The markets events listing must be tested before plain markets.
	{func(m, p string) bool {
		return m == http.MethodGet && strings.HasPrefix(p, "/markets") && strings.Contains(p, "/events")
	}, EndpointGammaMarketsEvents},
	{func(m, p string) bool {
		return m == http.MethodGet && strings.HasPrefix(p, "/markets")
	}, EndpointGammaMarkets},
	{func(m, p string) bool {
		return m == http.MethodGet && strings.HasPrefix(p, "/comments")
	}, EndpointGammaComments},
	{func(m, p string) bool {
		return m == http.MethodGet && strings.HasPrefix(p, "/tags")
	}, EndpointGammaTags},
	{func(m, p string) bool {
		return m == http.MethodGet && (p == "/public-search" || p == "/search")
	}, EndpointGammaSearch},
}

var dataRules = []endpointRule{
	{func(m, p string) bool {
		return m == http.MethodGet && p == "/trades"
	}, EndpointDataTrades},
	{func(m, p string) bool {
		return m == http.MethodGet && p == "/positions"
	}, EndpointDataPositions},
	{func(m, p string) bool {
		return m == http.MethodGet && p == "/closed-positions"
	}, EndpointDataClosedPositions},
}

// Classify maps a request URL and method to its (APIType, Endpoint) pair. It
// is a pure function, total over its inputs: unrecognized hosts classify as
// (APIUnknown, EndpointUnknown) and unmatched paths fall to the API's general
// endpoint, never an error.
func Classify(u *url.URL, method string) (APIType, Endpoint) {
	host := u.Hostname()
	path := u.Path

	api := detectAPI(host, path)

	switch api {
	case APIClob:
		return api, matchRules(clobRules, method, path, EndpointClobGeneral)
	case APIGamma:
		return api, matchRules(gammaRules, method, path, EndpointGammaGeneral)
	case APIData:
		return api, matchRules(dataRules, method, path, EndpointDataGeneral)
	case APIBridge:
		return api, EndpointBridgeGeneral
	default:
		return api, EndpointUnknown
	}
}

// detectAPI chooses the target API from the host, or from a path prefix when
// the host is local (test servers bind to localhost or 127.0.0.1).
func detectAPI(host, path string) APIType {
	local := strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1")

	switch {
	case strings.Contains(host, "clob.polymarket.com") || (local && strings.HasPrefix(path, "/clob")):
		return APIClob
	case strings.Contains(host, "gamma-api.polymarket.com") || (local && strings.HasPrefix(path, "/gamma")):
		return APIGamma
	case strings.Contains(host, "data-api.polymarket.com") || (local && strings.HasPrefix(path, "/data")):
		return APIData
	case strings.Contains(host, "bridge.polymarket.com") || (local && strings.HasPrefix(path, "/bridge")):
		return APIBridge
	default:
		return APIUnknown
	}
}

func matchRules(rules []endpointRule, method, path string, fallback Endpoint) Endpoint {
	for _, r := range rules {
		if r.match(method, path) {
			return r.endpoint
		}
	}
	return fallback
}
