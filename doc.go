// Package polylimit provides client-side rate limiting for outgoing HTTP
// requests to the Polymarket APIs. It classifies every request by target API
// and endpoint and enforces a hierarchy of independent token-bucket quotas
// (endpoint-specific, API-general, global) before the request is sent.
//
// # Key Concepts
//
//   - [Quota] is an immutable token-bucket specification: a capacity and a
//     refill period. [MultiWindowQuota] pairs a short burst quota with a
//     longer sustained quota; both must admit independently.
//   - [Category] names a rate-limit bucket: one global category, a general
//     category per API, and a fixed set of endpoint categories.
//   - [Config] maps every category to an optional quota. [DefaultConfig]
//     reproduces Polymarket's documented limits; [DisabledConfig] turns
//     everything off.
//   - [Classify] maps a request URL and method to its (APIType, Endpoint)
//     pair using ordered first-match rules.
//   - [Limiter] checks buckets from most to least specific and suspends the
//     caller until every applicable bucket admits the request.
//
// # Rate Limits
//
// See https://docs.polymarket.com/quickstart/introduction/rate-limits for the
// official documentation. Defaults, per [DefaultConfig]:
//
//	Global                      15,000 / 10s
//	CLOB general                 9,000 / 10s
//	CLOB book/price/midpoint     1,500 / 10s each
//	CLOB POST order              3,500 / 10s burst, 36,000 / 10m sustained
//	CLOB DELETE order            3,000 / 10s burst, 30,000 / 10m sustained
//	CLOB submit (relayer)           25 / 1m
//	CLOB user PNL                  200 / 10s
//	Gamma general                4,000 / 10s
//	Gamma events                   500 / 10s
//	Gamma markets                  300 / 10s
//	Gamma markets events           900 / 10s
//	Gamma comments/tags            200 / 10s each
//	Gamma search                   350 / 10s
//	Data general                 1,000 / 10s
//	Data trades                    200 / 10s
//	Data positions                 150 / 10s each (open and closed)
//	Bridge                       unlimited
//
// # Quick Start
//
//	limiter := polylimit.New()
//
//	// Wrap an http.Client so every request is admitted before dispatch.
//	client := &http.Client{
//		Transport: limiter.Transport(nil),
//	}
//
// Admission waits rather than rejects: a request that would exceed a quota is
// delayed until its buckets refill. Use [Limiter.TryAdmit] for an immediate
// accept/reject decision instead.
package polylimit
