/*
Package ports defines the driven ports (interfaces) for the card builder.

These interfaces decouple the core from external implementations, allowing
the translation step to work with the real Azure binding, a caching layer,
or an in-memory fake interchangeably.

# Key Interfaces

  - Translator: translates a bounded batch of texts, preserving order.
*/
package ports
