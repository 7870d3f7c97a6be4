package reshape

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentMarshalJSONKeepsGroupOrder(t *testing.T) {
	t.Parallel()

	doc := Document{Groups: []Group{
		{Name: "No Group", Records: []Record{{Property: "Capital", Value: "Paris"}}},
		{Name: "Area", Records: []Record{{Property: "Total", Value: "643,801 km2"}}},
		{Name: "Empty", Records: nil},
	}}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t,
		`{"No Group":[{"Property":"Capital","Value":"Paris"}],"Area":[{"Property":"Total","Value":"643,801 km2"}],"Empty":[]}`,
		string(data),
	)
}

func TestDocumentMarshalIndent(t *testing.T) {
	t.Parallel()

	doc := Document{Groups: []Group{
		{Name: "Area", Records: []Record{{Property: "Total", Value: "1"}}},
	}}

	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"Area\": [\n    {\n      \"Property\": \"Total\",\n      \"Value\": \"1\"\n    }\n  ]\n}", string(data))
}

func TestDocumentUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var doc Document
	err := json.Unmarshal([]byte(`{"Zeta":[{"Property":"a","Value":"1"}],"Alpha":[]}`), &doc)
	require.NoError(t, err)

	require.Equal(t, []string{"Zeta", "Alpha"}, doc.Names())

	records, ok := doc.Records("Zeta")
	require.True(t, ok)
	require.Equal(t, []Record{{Property: "a", Value: "1"}}, records)
}

func TestDocumentUnmarshalJSONRejectsArrays(t *testing.T) {
	t.Parallel()

	var doc Document
	require.Error(t, json.Unmarshal([]byte(`[{"Property":"a","Value":"1"}]`), &doc))
}
