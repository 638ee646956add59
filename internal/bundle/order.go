package bundle

import "sort"

// Order stable-sorts docs by (not IsReadme, Depth, Source) ascending and
// reassigns 1-based indices. READMEs therefore always precede regular
// documents, shallower paths precede deeper ones, and runs on the same
// filesystem state produce identical output.
func Order(docs []Document) []Document {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if a.IsReadme != b.IsReadme {
			return a.IsReadme
		}
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		return a.Source < b.Source
	})

	for i := range docs {
		docs[i].Index = i + 1
	}

	return docs
}
