package mirror

type TopicInfo struct {
	AdminKey         map[string]any `json:"admin_key"`
	AutoRenewAccount string         `json:"auto_renew_account"`
	AutoRenewPeriod  int64          `json:"auto_renew_period"`
	CreatedTimestamp string         `json:"created_timestamp"`
	Deleted          bool           `json:"deleted"`
	Memo             string         `json:"memo"`
	SubmitKey        map[string]any `json:"submit_key"`
	TopicID          string         `json:"topic_id"`
}

type AccountInfo struct {
	Account string         `json:"account"`
	Key     map[string]any `json:"key"`
	Memo    string         `json:"memo"`
	Balance AccountBalance `json:"balance"`
}

type AccountBalance struct {
	Balance   int64  `json:"balance"`
	Timestamp string `json:"timestamp"`
}

type TokenInfo struct {
	TokenID           string         `json:"token_id"`
	Name              string         `json:"name"`
	Symbol            string         `json:"symbol"`
	Type              string         `json:"type"`
	SupplyType        string         `json:"supply_type"`
	TotalSupply       string         `json:"total_supply"`
	TreasuryAccountID string         `json:"treasury_account_id"`
	Memo              string         `json:"memo"`
	CreatedTimestamp  string         `json:"created_timestamp"`
	Deleted           bool           `json:"deleted"`
	AdminKey          map[string]any `json:"admin_key"`
	SupplyKey         map[string]any `json:"supply_key"`
}

type NFTInfo struct {
	AccountID        string `json:"account_id"`
	CreatedTimestamp string `json:"created_timestamp"`
	Deleted          bool   `json:"deleted"`
	Metadata         string `json:"metadata"`
	SerialNumber     int64  `json:"serial_number"`
	TokenID          string `json:"token_id"`
}
