package usecase

import (
	"math"
	"strconv"
	"strings"
)

// The paygate does not echo callbacks with a stable schema: the hosted card
// checkout and the raw address-forwarding flow use different key casings and
// sometimes different names for the same field. Each group below lists the
// accepted synonyms in priority order; the first present non-empty value wins.
var (
	orderNumberKeys = []string{"order_id", "orderId", "order_number", "orderNumber", "order", "number", "invoice_id", "invoiceId"}
	orderDocIDKeys  = []string{"order_doc_id", "orderDocId", "order_doc"}
	sessionIDKeys   = []string{"session_id", "sessionId"}
	statusKeys      = []string{"status"}
	txInKeys        = []string{"txid_in", "txidIn", "transaction_id", "transactionId"}
	txOutKeys       = []string{"txid_out", "txidOut"}
	addressInKeys   = []string{"address_in", "addressIn"}
	providerKeys    = []string{"provider", "provider_id", "providerId"}
	valueCoinKeys   = []string{"value_coin", "valueCoin", "amount"}
	valueFwdKeys    = []string{"value_forwarded_coin", "valueForwardedCoin"}
	coinKeys        = []string{"coin", "currency"}
	ipnTokenKeys    = []string{"ipn_token", "ipnToken"}
	pendingKeys     = []string{"pending"}
)

// callbackFields is the normalized view of one webhook delivery. It lives
// only for the duration of the request.
type callbackFields struct {
	OrderNumber string
	OrderDocID  string
	SessionID   string
	Status      string
	TxIn        string
	TxOut       string
	AddressIn   string
	Provider    string
	Coin        string
	IpnToken    string

	ValueCoin          *float64
	ValueForwardedCoin *float64
	Pending            *bool
}

func normalizeCallback(payload map[string]any) callbackFields {
	return callbackFields{
		OrderNumber:        pickString(payload, orderNumberKeys),
		OrderDocID:         pickString(payload, orderDocIDKeys),
		SessionID:          pickString(payload, sessionIDKeys),
		Status:             pickString(payload, statusKeys),
		TxIn:               pickString(payload, txInKeys),
		TxOut:              pickString(payload, txOutKeys),
		AddressIn:          pickString(payload, addressInKeys),
		Provider:           pickString(payload, providerKeys),
		Coin:               pickString(payload, coinKeys),
		IpnToken:           pickString(payload, ipnTokenKeys),
		ValueCoin:          pickFloat(payload, valueCoinKeys),
		ValueForwardedCoin: pickFloat(payload, valueFwdKeys),
		Pending:            pickBool(payload, pendingKeys),
	}
}

// pickString returns the first present value under any of the keys, coerced
// to a trimmed string. Numbers are stringified; empty strings count as absent.
func pickString(payload map[string]any, keys []string) string {
	for _, key := range keys {
		v, ok := payload[key]
		if !ok {
			continue
		}
		if s := stringifyValue(v); s != "" {
			return s
		}
	}
	return ""
}

// pickFloat returns the first present numeric value under any of the keys.
// Strings are parsed as floats; non-finite results are rejected.
func pickFloat(payload map[string]any, keys []string) *float64 {
	for _, key := range keys {
		v, ok := payload[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			if !math.IsInf(n, 0) && !math.IsNaN(n) {
				return &n
			}
		case float32:
			f := float64(n)
			return &f
		case int:
			f := float64(n)
			return &f
		case int64:
			f := float64(n)
			return &f
		case string:
			s := strings.TrimSpace(n)
			if s == "" {
				continue
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
				continue
			}
			return &f
		}
	}
	return nil
}

// pickBool interprets the vendor's pending flag: "1"/"true" and "0"/"false"
// (case-insensitive), plus native JSON booleans. Anything else is absent.
func pickBool(payload map[string]any, keys []string) *bool {
	for _, key := range keys {
		v, ok := payload[key]
		if !ok {
			continue
		}
		if b, ok := v.(bool); ok {
			return &b
		}
		switch strings.ToLower(stringifyValue(v)) {
		case "1", "true":
			t := true
			return &t
		case "0", "false":
			f := false
			return &f
		}
	}
	return nil
}

func stringifyValue(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}
