package geo

// Response is the subset of the ipinfo.io JSON payload the ledger cares
// about.
type Response struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
	IP      string `json:"ip"`
}
