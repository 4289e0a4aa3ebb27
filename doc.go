// Package inventory provides the types and functions to track the profit of
// a small product inventory. It is designed to be local-first: the whole
// product list lives in a single durable slot (a JSON file or a Redis key)
// that is rewritten after every change.
//
// The core functionalities include:
//   - Product Management: an ordered list of products, addressed by position,
//     that can be appended to, edited, deleted and cleared (see [Store]).
//   - Profit Calculation: a stateless engine deriving per product and
//     aggregated figures in a local and a foreign currency (see [Calculator]).
//   - Views and Export: filtering of the product list, by name or with a
//     JSONPath expression, and CSV export of the displayed rows.
//
// This package serves as the foundational logic for the `inv` command-line
// tool.
package inventory
