package reshape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDropIncomplete(t *testing.T) {
	t.Parallel()

	frame := Frame{Rows: []Row{
		{Group: "Area", Property: "Total", Value: "1"},
		{Group: "Area", Property: "", Value: "2"},
		{Group: "", Property: "Flag", Value: "Flag"},
		{Group: "No Group", Property: "Anthem", Value: ""},
		{Group: "No Group", Property: "Currency", Value: "Euro"},
	}}

	got := frame.DropIncomplete()

	require.Equal(t, []Row{
		{Group: "Area", Property: "Total", Value: "1"},
		{Group: "No Group", Property: "Currency", Value: "Euro"},
	}, got.Rows)
	require.Len(t, frame.Rows, 5, "source frame must not change")
}

func TestGroupKeepsFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	frame := Frame{Rows: []Row{
		{Group: "No Group", Property: "Capital", Value: "Paris"},
		{Group: "Area", Property: "Total", Value: "1"},
		{Group: "No Group", Property: "Currency", Value: "Euro"},
		{Group: "Area", Property: "Water", Value: "2"},
		{Group: "Ethnic groups", Property: "French", Value: "85%"},
	}}

	doc := frame.Group()

	require.Equal(t, []string{"No Group", "Area", "Ethnic groups"}, doc.Names())

	records, ok := doc.Records("No Group")
	require.True(t, ok)
	require.Equal(t, []Record{
		{Property: "Capital", Value: "Paris"},
		{Property: "Currency", Value: "Euro"},
	}, records)

	records, ok = doc.Records("Area")
	require.True(t, ok)
	require.Equal(t, []Record{
		{Property: "Total", Value: "1"},
		{Property: "Water", Value: "2"},
	}, records)

	_, ok = doc.Records("Missing")
	require.False(t, ok)
}

func TestGroupEmptyFrame(t *testing.T) {
	t.Parallel()

	doc := Frame{}.Group()
	require.Empty(t, doc.Groups)

	data, err := doc.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))
}

func TestReshape(t *testing.T) {
	t.Parallel()

	markup := `<table><tbody>
<tr><th colspan="2">French Republic</th></tr>
<tr><td colspan="2">Flag</td></tr>
<tr><th>No Group</th><th>Capital</th><td>Paris</td></tr>
<tr><th>Area</th><th>Total</th><td>643,801 km2</td></tr>
<tr><th>Area</th><th>Water (%)</th><td>0.86</td></tr>
<tr><th>No Group</th><th>Anthem</th><td></td></tr>
</tbody></table>`

	doc, err := Reshape(markup)
	require.NoError(t, err)

	require.Equal(t, []string{"No Group", "Area"}, doc.Names())

	noGroup, _ := doc.Records("No Group")
	require.Equal(t, []Record{{Property: "Capital", Value: "Paris"}}, noGroup)

	area, _ := doc.Records("Area")
	require.Len(t, area, 2)
}
