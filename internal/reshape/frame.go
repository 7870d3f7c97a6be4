package reshape

// Row is one annotated infobox row. Empty fields are missing values.
type Row struct {
	Group    string
	Property string
	Value    string
}

// Complete reports whether every field holds a value.
func (r Row) Complete() bool {
	return r.Group != "" && r.Property != "" && r.Value != ""
}

// Frame is an ordered list of annotated rows.
type Frame struct {
	Rows []Row
}

// DropIncomplete returns a frame without rows that miss any field.
func (f Frame) DropIncomplete() Frame {
	rows := make([]Row, 0, len(f.Rows))
	for _, row := range f.Rows {
		if row.Complete() {
			rows = append(rows, row)
		}
	}

	return Frame{Rows: rows}
}

// Group collects rows by group name. Groups appear in order of first
// occurrence and records keep their row order.
func (f Frame) Group() Document {
	doc := Document{Groups: []Group{}}
	index := map[string]int{}

	for _, row := range f.Rows {
		idx, ok := index[row.Group]
		if !ok {
			idx = len(doc.Groups)
			index[row.Group] = idx
			doc.Groups = append(doc.Groups, Group{Name: row.Group, Records: []Record{}})
		}

		doc.Groups[idx].Records = append(doc.Groups[idx].Records, Record{
			Property: row.Property,
			Value:    row.Value,
		})
	}

	return doc
}

// Reshape parses annotated table markup into a grouped document.
func Reshape(markup string) (Document, error) {
	frame, err := ParseTable(markup)
	if err != nil {
		return Document{}, err
	}

	return frame.DropIncomplete().Group(), nil
}
