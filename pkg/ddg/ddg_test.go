package ddg

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const bigBenJSON = `{
  "Type": "D",
  "Heading": "Big Ben",
  "Image": "",
  "Answer": "",
  "AbstractText": "",
  "RelatedTopics": [
    {"Text": "Big Ben A clock tower in London", "FirstURL": "https://duckduckgo.com/Big_Ben", "Result": "<a>Big Ben</a>"},
    {"Name": "Music", "Topics": [
      {"Text": "Big Ben (band) A rock band", "FirstURL": "https://duckduckgo.com/Big_Ben_(band)"}
    ]}
  ]
}`

const earthXML = `<?xml version="1.0" encoding="utf-8"?>
<DuckDuckGoResponse version="1.0">
  <Heading>Earth</Heading>
  <AbstractText>Earth is the third planet from the Sun.</AbstractText>
  <AbstractURL>https://en.wikipedia.org/wiki/Earth</AbstractURL>
  <Answer type="calc">42</Answer>
  <Type>A</Type>
  <RelatedTopics>
    <RelatedTopic><FirstURL>https://duckduckgo.com/Moon</FirstURL><Text>Moon A natural satellite</Text></RelatedTopic>
    <RelatedTopicsSection name="See also">
      <RelatedTopic><FirstURL>https://duckduckgo.com/Mars</FirstURL><Text>Mars A planet</Text></RelatedTopic>
    </RelatedTopicsSection>
  </RelatedTopics>
</DuckDuckGoResponse>`

func TestClientQuerySendsInstantAnswerParams(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"q":             q.Get("q"),
			"format":        q.Get("format"),
			"no_html":       q.Get("no_html"),
			"skip_disambig": q.Get("skip_disambig"),
			"t":             q.Get("t"),
		}
		fmt.Fprint(w, bigBenJSON)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, AppName: "test-app"}, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	res, err := client.Query(context.Background(), "big ben")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	want := map[string]string{"q": "big ben", "format": "json", "no_html": "1", "skip_disambig": "0", "t": "test-app"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Fatalf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if res.Type != TypeDisambiguation {
		t.Fatalf("Type = %q, want disambiguation", res.Type)
	}
	if res.Answer != nil {
		t.Fatalf("Answer = %#v, want nil for empty answer", res.Answer)
	}
	if len(res.Related) != 2 {
		t.Fatalf("len(Related) = %d, want 2 (grouped topics flattened)", len(res.Related))
	}
	if res.Related[0].URL != "https://duckduckgo.com/Big_Ben" {
		t.Fatalf("Related[0].URL = %q", res.Related[0].URL)
	}
	if res.Related[1].Text != "Big Ben (band) A rock band" {
		t.Fatalf("Related[1].Text = %q", res.Related[1].Text)
	}
}

func TestClientQueryHTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := MustNew(Config{BaseURL: server.URL}, WithHTTPClient(server.Client()))
	if _, err := client.Query(context.Background(), "earth"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestClientQueryEmpty(t *testing.T) {
	t.Parallel()

	client := MustNew(Config{})
	if _, err := client.Query(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestClientDetailParsesXML(t *testing.T) {
	t.Parallel()

	var gotRawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		fmt.Fprint(w, earthXML)
	}))
	t.Cleanup(server.Close)

	client := MustNew(Config{}, WithHTTPClient(server.Client()))
	res, err := client.Detail(context.Background(), server.URL+"/Earth?o=x")
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if gotRawQuery != "o=x" {
		t.Fatalf("raw query = %q, want o=x", gotRawQuery)
	}
	if res.Type != TypeArticle {
		t.Fatalf("Type = %q, want A", res.Type)
	}
	if res.Abstract.Text != "Earth is the third planet from the Sun." {
		t.Fatalf("Abstract.Text = %q", res.Abstract.Text)
	}
	if res.Answer == nil || res.Answer.Text != "42" || res.Answer.Type != "calc" {
		t.Fatalf("Answer = %#v", res.Answer)
	}
	if len(res.Related) != 2 || res.Related[1].Text != "Mars A planet" {
		t.Fatalf("Related = %#v", res.Related)
	}
}

func TestClientDetailEmptyBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := MustNew(Config{}, WithHTTPClient(server.Client()))
	res, err := client.Detail(context.Background(), server.URL+"/Nothing?o=x")
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if res != nil {
		t.Fatalf("Detail() = %#v, want nil for empty body", res)
	}
}

func TestParseJSONAnswerObject(t *testing.T) {
	t.Parallel()

	res, err := ParseJSON([]byte(`{"Type":"E","Answer":{"result":"2"},"AnswerType":"calc","RelatedTopics":[]}`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if res.Answer == nil || res.Answer.Text != "2" {
		t.Fatalf("Answer = %#v, want text 2", res.Answer)
	}
	if res.Type.String() != "exclusive" {
		t.Fatalf("Type.String() = %q, want exclusive", res.Type.String())
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{BaseURL: "not a url"}); err == nil {
		t.Fatal("expected error for invalid base url")
	}
}
