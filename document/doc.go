// Package document defines the document model consumed by the relevance
// core and a simple in-memory store used for result hydration.
//
// Acquisition and parsing of source material live outside this library;
// the Parser interface is the seam they plug into. The Store keeps indexed
// documents addressable by ID so search results can be hydrated with
// titles and content. It is purely in-memory: persistence is an external
// concern.
package document
