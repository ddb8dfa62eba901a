package ddg

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

// ResultType is the single-letter Type code reported by the Instant Answer API.
type ResultType string

const (
	TypeArticle        ResultType = "A"
	TypeDisambiguation ResultType = "D"
	TypeCategory       ResultType = "C"
	TypeName           ResultType = "N"
	TypeExclusive      ResultType = "E"
	TypeNothing        ResultType = ""
)

func (t ResultType) String() string {
	switch t {
	case TypeArticle:
		return "answer"
	case TypeDisambiguation:
		return "disambiguation"
	case TypeCategory:
		return "category"
	case TypeName:
		return "name"
	case TypeExclusive:
		return "exclusive"
	default:
		return "nothing"
	}
}

// Results is the decoded instant answer, from either the JSON API or the
// XML detail document.
type Results struct {
	Type     ResultType
	Heading  string
	Image    string
	Answer   *Answer // nil when the API returned no direct answer
	Abstract Abstract
	Related  []Topic // flattened; grouped sections are expanded in order
}

type Answer struct {
	Text string
	Type string
}

type Abstract struct {
	Text   string
	HTML   string
	URL    string
	Source string
}

type Topic struct {
	Text string
	URL  string
	HTML string
}

/* ------------------------------- JSON ------------------------------- */

type jsonResponse struct {
	Type           string          `json:"Type"`
	Heading        string          `json:"Heading"`
	Image          string          `json:"Image"`
	Answer         json.RawMessage `json:"Answer"`
	AnswerType     string          `json:"AnswerType"`
	Abstract       string          `json:"Abstract"`
	AbstractText   string          `json:"AbstractText"`
	AbstractURL    string          `json:"AbstractURL"`
	AbstractSource string          `json:"AbstractSource"`
	RelatedTopics  []jsonTopic     `json:"RelatedTopics"`
}

type jsonTopic struct {
	Text     string      `json:"Text"`
	FirstURL string      `json:"FirstURL"`
	Result   string      `json:"Result"`
	Name     string      `json:"Name"`
	Topics   []jsonTopic `json:"Topics"`
}

// ParseJSON decodes a response body of the Instant Answer JSON API.
func ParseJSON(raw []byte) (*Results, error) {
	var parsed jsonResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode instant answer json: %w", err)
	}

	res := &Results{
		Type:    ResultType(strings.TrimSpace(parsed.Type)),
		Heading: parsed.Heading,
		Image:   parsed.Image,
		Abstract: Abstract{
			Text:   parsed.AbstractText,
			HTML:   parsed.Abstract,
			URL:    parsed.AbstractURL,
			Source: parsed.AbstractSource,
		},
		Related: flattenJSONTopics(parsed.RelatedTopics, nil),
	}

	if text := decodeAnswerText(parsed.Answer); text != "" {
		res.Answer = &Answer{Text: text, Type: parsed.AnswerType}
	}
	return res, nil
}

// decodeAnswerText accepts both the plain string form of Answer and the
// object form some answer types use ({"result": "..."}).
func decodeAnswerText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var obj struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Result
	}
	return ""
}

func flattenJSONTopics(in []jsonTopic, out []Topic) []Topic {
	for _, t := range in {
		if len(t.Topics) > 0 {
			out = flattenJSONTopics(t.Topics, out)
			continue
		}
		out = append(out, Topic{Text: t.Text, URL: t.FirstURL, HTML: t.Result})
	}
	return out
}

/* -------------------------------- XML ------------------------------- */

type xmlResponse struct {
	Type           string          `xml:"Type"`
	Heading        string          `xml:"Heading"`
	Image          string          `xml:"Image"`
	Answer         *xmlAnswer      `xml:"Answer"`
	Abstract       string          `xml:"Abstract"`
	AbstractText   string          `xml:"AbstractText"`
	AbstractURL    string          `xml:"AbstractURL"`
	AbstractSource string          `xml:"AbstractSource"`
	RelatedTopics  xmlRelatedTopic `xml:"RelatedTopics"`
}

type xmlAnswer struct {
	Text string `xml:",chardata"`
	Type string `xml:"type,attr"`
}

type xmlRelatedTopic struct {
	Topics   []xmlTopic   `xml:"RelatedTopic"`
	Sections []xmlSection `xml:"RelatedTopicsSection"`
}

type xmlSection struct {
	Name   string     `xml:"name,attr"`
	Topics []xmlTopic `xml:"RelatedTopic"`
}

type xmlTopic struct {
	Text     string `xml:"Text"`
	FirstURL string `xml:"FirstURL"`
	Result   string `xml:"Result"`
}

// ParseXML decodes the detail document served for "?o=x" URLs into the
// same shape as ParseJSON.
func ParseXML(raw []byte) (*Results, error) {
	var parsed xmlResponse
	if err := xml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode instant answer xml: %w", err)
	}

	res := &Results{
		Type:    ResultType(strings.TrimSpace(parsed.Type)),
		Heading: strings.TrimSpace(parsed.Heading),
		Image:   strings.TrimSpace(parsed.Image),
		Abstract: Abstract{
			Text:   strings.TrimSpace(parsed.AbstractText),
			HTML:   strings.TrimSpace(parsed.Abstract),
			URL:    strings.TrimSpace(parsed.AbstractURL),
			Source: strings.TrimSpace(parsed.AbstractSource),
		},
	}

	if parsed.Answer != nil {
		if text := strings.TrimSpace(parsed.Answer.Text); text != "" {
			res.Answer = &Answer{Text: text, Type: parsed.Answer.Type}
		}
	}

	for _, t := range parsed.RelatedTopics.Topics {
		res.Related = append(res.Related, t.topic())
	}
	for _, section := range parsed.RelatedTopics.Sections {
		for _, t := range section.Topics {
			res.Related = append(res.Related, t.topic())
		}
	}
	return res, nil
}

func (t xmlTopic) topic() Topic {
	return Topic{
		Text: strings.TrimSpace(t.Text),
		URL:  strings.TrimSpace(t.FirstURL),
		HTML: strings.TrimSpace(t.Result),
	}
}
