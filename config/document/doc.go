// Package document decodes YAML or JSON data into plain Go values that keep the
// order of mapping keys, so that they can be navigated with pathget and written back.
//
//	doc, err := document.Decode(data)
//	name, err := doc.Get("users.0.name", pathget.WithSplitChar("."), pathget.WithParseIndices(true))
package document
