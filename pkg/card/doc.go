/*
Package card contains the domain model for Adaptive Card documents.

It defines the closed set of element kinds, the Node tree with its
insertion-ordered attribute bags, the Card document root, and the JSON
serialization that renders the tree into the external card schema. This
package is kept pure: it performs no I/O and knows nothing about cursors,
translation services, or transports.

# Key Entities

  - Kind: the closed set of element type tags, each with a fixed capability
    record (item container, action container, action flag, translatable
    fields).
  - Node: one element of the tree; attributes preserve insertion order, and
    child containers preserve strict insertion order.
  - Card: the document root (body, actions, format metadata).

Structural editing is intentionally minimal: nodes are attached once and
never removed or reparented. Use package builder for cursor-based
construction.
*/
package card
