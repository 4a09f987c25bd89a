// Package writers turns parsed records into serialized outputs.
//
// Writers own all presentation knowledge; the parser and the pipeline never
// format anything. JSONL and msgpack go through pkg/api (v1) for a stable
// wire format.
package writers
