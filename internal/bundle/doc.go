// Package bundle collects text files into Documents and renders them as an
// output bundle.
//
// The pipeline has three stages, all synchronous and single-pass:
//
// # Collection
//
// A Collector walks each requested file or directory, applying hidden-entry
// exclusion, .gitignore rules, and the extension filter, and de-duplicating
// by source path across every collection call of the run:
//
//	collector := bundle.NewCollector([]string{".py"}, log.Warnf)
//	docs := collector.Collect("/home/u/src/proj", rules)
//
// README.md files found by the ancestor walk are collected first, through
// the same Collector, so a README reachable both as an ancestor and inside
// a requested tree appears exactly once.
//
// # Ordering
//
// Order sorts the combined Documents by (not IsReadme, Depth, Source) and
// assigns final 1-based indices. Every README ends up before every regular
// document, and output is reproducible run to run:
//
//	docs = bundle.Order(docs)
//
// # Rendering
//
// Raw and Tagged turn the ordered Documents into the final string. Both
// embed file content byte-for-byte; the tagged format performs no XML
// escaping on purpose, since the output is an LLM prompt convention rather
// than a parseable XML document.
package bundle
