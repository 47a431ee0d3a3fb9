package yahoo

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API. Only the fields the quote path needs are mapped: the result
// metadata carries the latest regular-market price.
type Response struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				ExchangeName       string  `json:"exchangeName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}
