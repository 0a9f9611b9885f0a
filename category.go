package polylimit

// Category identifies a single rate-limit bucket. The set of categories is
// closed: one global bucket, a general bucket per API, and a fixed list of
// endpoint buckets matching Polymarket's documented limits.
type Category int

const (
	// CategoryGlobal applies across all APIs regardless of classification.
	CategoryGlobal Category = iota

	// CLOB API categories.
	CategoryClobGeneral
	CategoryClobBook
	CategoryClobPrice
	CategoryClobMidpoint
	CategoryClobPostOrder
	CategoryClobDeleteOrder
	CategoryClobSubmit
	CategoryClobUserPnl

	// Gamma API categories.
	CategoryGammaGeneral
	CategoryGammaEvents
	CategoryGammaMarkets
	CategoryGammaMarketsEvents
	CategoryGammaComments
	CategoryGammaTags
	CategoryGammaSearch

	// Data API categories.
	CategoryDataGeneral
	CategoryDataTrades
	CategoryDataPositions
	CategoryDataClosedPositions

	// Bridge API category (no documented limit by default).
	CategoryBridgeGeneral

	numCategories
)

// Categories returns every known category. The slice is freshly allocated;
// callers may modify it.
func Categories() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

func (c Category) String() string {
	switch c {
	case CategoryGlobal:
		return "global"
	case CategoryClobGeneral:
		return "clob-general"
	case CategoryClobBook:
		return "clob-book"
	case CategoryClobPrice:
		return "clob-price"
	case CategoryClobMidpoint:
		return "clob-midpoint"
	case CategoryClobPostOrder:
		return "clob-post-order"
	case CategoryClobDeleteOrder:
		return "clob-delete-order"
	case CategoryClobSubmit:
		return "clob-submit"
	case CategoryClobUserPnl:
		return "clob-user-pnl"
	case CategoryGammaGeneral:
		return "gamma-general"
	case CategoryGammaEvents:
		return "gamma-events"
	case CategoryGammaMarkets:
		return "gamma-markets"
	case CategoryGammaMarketsEvents:
		return "gamma-markets-events"
	case CategoryGammaComments:
		return "gamma-comments"
	case CategoryGammaTags:
		return "gamma-tags"
	case CategoryGammaSearch:
		return "gamma-search"
	case CategoryDataGeneral:
		return "data-general"
	case CategoryDataTrades:
		return "data-trades"
	case CategoryDataPositions:
		return "data-positions"
	case CategoryDataClosedPositions:
		return "data-closed-positions"
	case CategoryBridgeGeneral:
		return "bridge-general"
	default:
		return "unknown"
	}
}
