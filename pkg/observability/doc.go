/*
Package observability exposes Prometheus instrumentation for the translation
pipeline: batch counts by outcome, batch latencies, and the number of card
fields rewritten. All hooks are nil-safe so instrumentation stays optional.
*/
package observability
