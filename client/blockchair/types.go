package blockchair

import "encoding/json"

type BlockchairContext struct {
	Code  int32  `json:"code"` // 200 = ok
	Error string `json:"error,omitempty"`
	State int64  `json:"state"`
}

type blockchairData struct {
	Data    map[string]json.RawMessage `json:"data"`
	Context BlockchairContext          `json:"context"`
}

// data is an empty list instead of an object when nothing was found
type blockchairNotFoundData struct {
	Data    []string          `json:"data"`
	Context BlockchairContext `json:"context"`
}

type blockchairAddressFull struct {
	Type             string `json:"type"`
	Balance          uint64 `json:"balance"`
	Received         uint64 `json:"received"`
	Spent            uint64 `json:"spent"`
	TransactionCount uint64 `json:"transaction_count"`
}

type blockchairAddressData struct {
	Address blockchairAddressFull `json:"address"`
}
