package domain

// ListItem represents one line of a shopping list. Items are immutable once
// a comparison run has priced them.
type ListItem struct {
	ID       string  `json:"id"`
	RawText  string  `json:"raw_text" binding:"required"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// StorePrice is one retailer's answer for one list item.
// Available=false and Price=0 both mean "no usable quote" and are treated
// identically by the comparison engine. The optional fields are always
// allowed to be empty; absence means "unknown", never an error.
type StorePrice struct {
	Price       float64 `json:"price"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
	Available   bool    `json:"available"`
	ProductName string  `json:"product_name,omitempty"`
	Size        string  `json:"size,omitempty"`
	URL         string  `json:"url,omitempty"`
}

// Usable reports whether the quote can participate in best-store selection
func (p *StorePrice) Usable() bool {
	return p != nil && p.Available && p.Price > 0
}

// UnavailableQuote builds the placeholder quote recorded when a store has no
// product or its fetch failed. The original raw text is carried so the
// presentation layer can still label the row.
func UnavailableQuote(rawText string) *StorePrice {
	return &StorePrice{Price: 0, Available: false, ProductName: rawText}
}

// PriceResult is the engine's per-item output. Quotes contains an entry for
// every requested store, even stores that returned nothing, so "not
// available" cells render uniformly downstream.
type PriceResult struct {
	ItemID    string                  `json:"item_id"`
	RawText   string                  `json:"raw_text"`
	Quotes    map[StoreID]*StorePrice `json:"stores"`
	BestStore StoreID                 `json:"best_store"`
}

// StoreSummary aggregates one requested store across a whole run, whether or
// not it won any item.
type StoreSummary struct {
	Store          StoreID `json:"store"`
	StoreName      string  `json:"store_name"`
	Total          float64 `json:"total"`
	AvailableItems int     `json:"available_items"`
	TotalItems     int     `json:"total_items"`
}

// StoreGroup is one bucket of the optimized shopping allocation: the items a
// store won, with their summed price.
type StoreGroup struct {
	Store     StoreID  `json:"store"`
	StoreName string   `json:"store_name"`
	ItemCount int      `json:"item_count"`
	Subtotal  float64  `json:"subtotal"`
	ItemIDs   []string `json:"item_ids"`
}

// PriceRunRequest is a request to price one shopping list against a set of
// stores. Items travel inline; list persistence is out of scope for this
// service.
type PriceRunRequest struct {
	ListID string     `json:"list_id"`
	Stores []string   `json:"stores"`
	Postal string     `json:"postal,omitempty"`
	Items  []ListItem `json:"items"`
}

// PriceRun is the complete output of one comparison run
type PriceRun struct {
	RunID     string         `json:"run_id"`
	Items     []PriceResult  `json:"items"`
	Summaries []StoreSummary `json:"store_summaries"`
	Optimized []StoreGroup   `json:"optimized"`
}
