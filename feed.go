package portfolio

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/PaesslerAG/jsonpath"

	"github.com/charlywyss-beep/Portfolio-Manager-sub000/date"
)

// This file parses raw market-data payloads into Quote values. The HTTP
// transport to the provider belongs to a collaborator; only the document
// shape is owned here. Example payload:
//
//	{
//	    "symbol": "ABC.L",
//	    "currency": "GBX",
//	    "price": 120.5,
//	    "previousClose": 119.0,
//	    "observedAt": "2026-08-28T16:30:00Z",
//	    "series": [
//	        {"date": "2026-08-28", "value": 120.1},
//	        {"date": "2026-08-28", "value": 120.5}
//	    ]
//	}

// jget extracts a single value from a parsed JSON document.
// jsonpath is never clear about whether it returns a list of one answer
// or a single answer; jget keeps the first one if any.
func jget(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("error parsing %q: empty result", path)
		}
		jval = jlist[0]
	}
	return jval, nil
}

func jfloat(jobj any, path string) (float64, error) {
	jval, err := jget(jobj, path)
	if err != nil {
		return 0, err
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: not a number: %v", path, jval)
	}
	return val, nil
}

func jstring(jobj any, path string) (string, error) {
	jval, err := jget(jobj, path)
	if err != nil {
		return "", err
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: not a string: %v", path, jval)
	}
	return val, nil
}

// ParseQuote extracts a raw quote from a provider payload. Price,
// currency and symbol are required; previous close, series and
// observation time are optional. The values are returned exactly as
// reported, before any unit normalization.
func ParseQuote(payload []byte) (Quote, error) {
	var jobj any
	if err := json.Unmarshal(payload, &jobj); err != nil {
		return Quote{}, fmt.Errorf("invalid quote payload: %w", err)
	}

	var q Quote
	var err error
	if q.Symbol, err = jstring(jobj, "$.symbol"); err != nil {
		return Quote{}, err
	}
	if q.Currency, err = jstring(jobj, "$.currency"); err != nil {
		return Quote{}, err
	}
	if q.Price, err = jfloat(jobj, "$.price"); err != nil {
		return Quote{}, err
	}

	if v, err := jfloat(jobj, "$.previousClose"); err == nil {
		q.PreviousClose = v
	}
	if s, err := jstring(jobj, "$.observedAt"); err == nil {
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			q.ObservedAt = ts
		}
	}

	jseries, err := jsonpath.Get("$.series[*]", jobj)
	if err != nil {
		return q, nil // no series in this payload
	}
	jpoints, ok := jseries.([]any)
	if !ok {
		return q, nil
	}
	for _, jpoint := range jpoints {
		value, err := jfloat(jpoint, "$.value")
		if err != nil {
			return Quote{}, fmt.Errorf("invalid series point: %w", err)
		}
		str, err := jstring(jpoint, "$.date")
		if err != nil {
			return Quote{}, fmt.Errorf("invalid series point: %w", err)
		}
		on, err := date.Parse(str)
		if err != nil {
			return Quote{}, fmt.Errorf("invalid series point: %w", err)
		}
		q.Series = append(q.Series, SeriesPoint{Date: on, Value: value})
	}
	return q, nil
}

// NormalizedSeries returns the quote's series with every point pushed
// through the price normalizer, ready for ReconcileReferenceClose.
func (q Quote) NormalizedSeries(n Normalizer) []SeriesPoint {
	if len(q.Series) == 0 {
		return nil
	}
	out := make([]SeriesPoint, len(q.Series))
	for i, p := range q.Series {
		out[i] = SeriesPoint{Date: p.Date, Value: n.NormalizePrice(p.Value, q.Currency, q.Symbol)}
	}
	return out
}
