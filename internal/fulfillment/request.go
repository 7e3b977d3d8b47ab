// Package fulfillment defines the Dialogflow ES webhook request and response
// bodies exchanged on POST /.
package fulfillment

import (
	"encoding/json"
)

// WebhookRequest is the body Dialogflow POSTs for each matched intent.
// Only the fields the handlers read are declared.
type WebhookRequest struct {
	ResponseID                  string                      `json:"responseId"`
	Session                     string                      `json:"session"`
	QueryResult                 QueryResult                 `json:"queryResult"`
	OriginalDetectIntentRequest OriginalDetectIntentRequest `json:"originalDetectIntentRequest"`
}

// QueryResult carries the classification result.
type QueryResult struct {
	QueryText    string     `json:"queryText"`
	LanguageCode string     `json:"languageCode"`
	Intent       Intent     `json:"intent"`
	Parameters   Parameters `json:"parameters"`
}

// OriginalDetectIntentRequest identifies the integration the user spoke through.
type OriginalDetectIntentRequest struct {
	Source string `json:"source"`
}

// IntentName is a display name that decodes to "" when the JSON value is not a string.
type IntentName string

func (n *IntentName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*n = ""
		return nil
	}
	*n = IntentName(s)
	return nil
}

// Intent is the matched intent. A value that is not an object decodes to the zero Intent.
type Intent struct {
	Name        IntentName `json:"name"`
	DisplayName IntentName `json:"displayName"`
}

func (i *Intent) UnmarshalJSON(data []byte) error {
	type plain Intent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*i = Intent{}
		return nil
	}
	*i = Intent(p)
	return nil
}

// IntentName returns the display name used for dispatch.
func (r *WebhookRequest) IntentName() string {
	if r == nil {
		return ""
	}
	return string(r.QueryResult.Intent.DisplayName)
}

// LanguageCode returns the conversation language, e.g. "en-US".
func (r *WebhookRequest) LanguageCode() string {
	if r == nil {
		return ""
	}
	return r.QueryResult.LanguageCode
}

// Source returns the originating integration, e.g. "line".
func (r *WebhookRequest) Source() string {
	if r == nil {
		return ""
	}
	return r.OriginalDetectIntentRequest.Source
}

// Params returns the extracted intent parameters.
func (r *WebhookRequest) Params() Parameters {
	if r == nil {
		return nil
	}
	return r.QueryResult.Parameters
}
