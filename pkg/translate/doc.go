/*
Package translate rewrites a card's human-readable text fields into a target
language through an external translation collaborator.

Collect walks the finished tree and gathers every (node, field) pair eligible
for translation; the Engine partitions the pairs into bounded batches,
fans the batches out concurrently, joins all of them, and applies results
positionally back onto the same node instances. Failures are tolerated per
batch: successfully translated batches are always committed, and the caller
receives a BatchError naming exactly what stayed untranslated.
*/
package translate
