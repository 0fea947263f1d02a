// Package suggest finds close matches for misspelled identifiers.
//
// Identifiers are normalized before comparison: CamelCase is tokenized, case is
// folded and separators are stripped, so "OrderID", "order_id" and "orderId" are
// all the same name. Similarity is a Levenshtein distance scaled to [0, 1].
package suggest
