package skill

import (
	"regexp"
)

const (
	SlotBinColor = "BinColor"
	SlotBinType  = "BinType"

	UnknownAddressPart = "(unknown)"
)

// Входящий запрос голосового ассистента (используемые поля)

type Request struct {
	Request RequestBody   `json:"request"`
	Address *AlexaAddress `json:"address,omitempty"`
}

type RequestBody struct {
	Type   string  `json:"type"`
	Intent *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name        string       `json:"name"`
	Value       string       `json:"value,omitempty"`
	Resolutions *Resolutions `json:"resolutions,omitempty"`
}

type Resolutions struct {
	ResolutionsPerAuthority []Authority `json:"resolutionsPerAuthority"`
}

type Authority struct {
	Authority string            `json:"authority"`
	Values    []ResolutionValue `json:"values"`
}

type ResolutionValue struct {
	Value ResolvedValue `json:"value"`
}

type ResolvedValue struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type AlexaAddress struct {
	AddressLine1 string `json:"addressLine1"`
	PostalCode   string `json:"postalCode"`
}

// Ответ

type Response struct {
	Version  string       `json:"version"`
	Response ResponseBody `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func NewResponse(text string) Response {
	return Response{
		Version: "1.0",
		Response: ResponseBody{
			OutputSpeech:     OutputSpeech{Type: "PlainText", Text: text},
			ShouldEndSession: true,
		},
	}
}

// CategoryToken returns the requested bin colour or the canonical bin type
// from the intent slots. An empty token means every category was asked for.
func CategoryToken(intent *Intent) string {
	if intent == nil || intent.Slots == nil {
		return ""
	}
	if slot, ok := intent.Slots[SlotBinColor]; ok && slot.Value != "" {
		return slot.Value
	}

	// для типа нужен канонический термин из resolutions
	slot, ok := intent.Slots[SlotBinType]
	if !ok || slot.Value == "" || slot.Resolutions == nil {
		return ""
	}
	if len(slot.Resolutions.ResolutionsPerAuthority) == 0 {
		return ""
	}
	auth := slot.Resolutions.ResolutionsPerAuthority[0]
	if len(auth.Values) == 0 {
		return ""
	}
	return auth.Values[0].Value.Name
}

var line1RegExp = regexp.MustCompile(`^(\d+[a-zA-Z]*),*\s+([a-zA-Z].*)`)

type HouseAddress struct {
	HouseNumber string
	Street      string
	Postcode    string
}

// ParseAddress splits the first address line into house number and street.
// Both become "(unknown)" when the line does not start with a house number.
func ParseAddress(address AlexaAddress) (HouseAddress, bool) {
	parsed := HouseAddress{
		HouseNumber: UnknownAddressPart,
		Street:      UnknownAddressPart,
		Postcode:    address.PostalCode,
	}
	match := line1RegExp.FindStringSubmatch(address.AddressLine1)
	if match == nil {
		return parsed, false
	}
	parsed.HouseNumber = match[1]
	parsed.Street = match[2]
	return parsed, true
}
