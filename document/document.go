package document

// Document is one unit of indexable content with a stable unsigned ID.
type Document struct {
	ID       uint64
	Title    string
	Content  string
	Metadata map[string]string
}

// Parser converts raw source input into documents. Implementations for
// real formats (HTML, PDF, ...) live with the acquisition layer; this
// package only defines the seam and a plain-text implementation.
type Parser interface {
	// Parse builds a document from raw input.
	Parse(input string) (Document, error)
	// ExtractText returns the text the index should see for a document.
	ExtractText(doc Document) string
}

// PlainTextParser treats the whole input as content and concatenates
// title and content for indexing.
type PlainTextParser struct {
	// NextID is assigned to the next parsed document and then incremented.
	NextID uint64
}

// Parse wraps the input in a document with the next sequential ID.
func (p *PlainTextParser) Parse(input string) (Document, error) {
	doc := Document{
		ID:      p.NextID,
		Content: input,
	}
	p.NextID++
	return doc, nil
}

// ExtractText returns the title and content separated by a newline, or
// just the content when there is no title.
func (p *PlainTextParser) ExtractText(doc Document) string {
	if doc.Title == "" {
		return doc.Content
	}
	return doc.Title + "\n" + doc.Content
}
