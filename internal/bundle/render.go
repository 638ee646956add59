package bundle

import (
	"fmt"
	"strings"
)

// Raw-format marker lines surrounding README content
const (
	ReadmeStartMarker = "### README START ###"
	ReadmeEndMarker   = "### README END ###"
)

// Raw renders docs in the plain-text format: per document the source path,
// a "---" separator, the content (wrapped in README markers for READMEs),
// a blank line, and a closing "---". Content is emitted verbatim.
func Raw(docs []Document) string {
	var lines []string
	for _, doc := range docs {
		lines = append(lines, doc.Source, "---")
		if doc.IsReadme {
			lines = append(lines, ReadmeStartMarker)
		}
		lines = append(lines, doc.Content)
		if doc.IsReadme {
			lines = append(lines, ReadmeEndMarker)
		}
		lines = append(lines, "", "---")
	}
	return strings.Join(lines, "\n")
}

// Tagged renders docs in the XML-like format: a <documents> container
// holding one <document index="N"> element per document, with the README
// content under <type>/<instructions> and regular content under
// <document_content>. Content is embedded without any escaping; the format
// is a prompt convention, not parseable XML.
func Tagged(docs []Document) string {
	lines := []string{"<documents>"}
	for _, doc := range docs {
		lines = append(lines,
			fmt.Sprintf("<document index=\"%d\">", doc.Index),
			fmt.Sprintf("<source>%s</source>", doc.Source),
		)
		if doc.IsReadme {
			lines = append(lines,
				"<type>readme</type>",
				"<instructions>",
				doc.Content,
				"</instructions>",
			)
		} else {
			lines = append(lines,
				"<document_content>",
				doc.Content,
				"</document_content>",
			)
		}
		lines = append(lines, "</document>")
	}
	lines = append(lines, "</documents>")
	return strings.Join(lines, "\n")
}
