// Package bookingtoolbox groups the Neobookings tool implementations.
//
// Each sub-package wires one area of the API into toolbox tools:
//   - [github.com/neomcp/neobookings-mcp/pkg/bookingtoolbox/session] — authentication check tool
//   - [github.com/neomcp/neobookings-mcp/pkg/bookingtoolbox/budget] — budget delete, details, properties-update, and search tools
//   - [github.com/neomcp/neobookings-mcp/pkg/bookingtoolbox/hotel] — hotel search tool
//
// Every tool follows the same pipeline: validate the caller's arguments,
// build a fresh request envelope, authenticate, issue the one domain call,
// reshape the typed response, and render a text summary. Failures never
// escape a tool handler; they are classified and rendered via the shared
// render sub-package.
package bookingtoolbox
