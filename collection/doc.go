/*
Package collection holds the record containers the combiner merges.

Dataset files come in exactly two top-level forms, and each form has a
container here:

List:
A JSON array of records, combined by concatenation:

	c, err := collection.Decode([]byte(`[{"id": 1}, {"id": 2}]`), collection.ShapeList)

Map:
A JSON object keyed by record identifier, combined by key union:

	c, err := collection.Decode([]byte(`{"1_23": [444, 555]}`), collection.ShapeMap)

Records pass through as json.RawMessage, so the combiner never interprets
record contents and cannot corrupt fields it does not understand.

Merging:

	combined, _ := collection.Decode(naData, collection.ShapeList)
	next, _ := collection.Decode(euData, collection.ShapeList)
	err := combined.Merge(next)

List merges preserve region order; Map merges union keys with the incoming
record winning a collision. Map output marshals with keys in natural order
(digit runs compare numerically), so combined files are byte-stable across
runs regardless of map iteration order.
*/
package collection
